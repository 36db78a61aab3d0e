// SPDX-License-Identifier: MIT

// Package solver talks to the upstream AI completion service.
//
// A Request (problem text and/or a base64 upload) goes through a Completer,
// either Gateway (OpenAI-compatible /chat/completions) or GenAI (Google Gemini
// through google.golang.org/genai), and the returned text is decoded into a
// Solution by ParseContent. Text that is not the expected JSON document is
// kept as a raw Solution (IsRaw) instead of failing the call.
//
// Upstream status codes are mapped to sentinels: 429 → ErrRateLimited,
// 402 → ErrUsageLimit, anything else non-2xx → ErrUpstream.
package solver
