// SPDX-License-Identifier: MIT

package solver

import (
	"encoding/json"
	"strings"
)

// ParseError is the Error text of a raw Solution.
const ParseError = "Could not parse structured response"

var fenceStripper = strings.NewReplacer("```json\n", "", "```json", "", "```\n", "", "```", "")

// ParseContent decodes upstream text into a Solution. Markdown code fences
// are removed first. Text that does not decode into the JSON object yields a
// raw Solution holding the unmodified content; ParseContent never fails.
func ParseContent(content string) *Solution {
	cleaned := strings.TrimSpace(fenceStripper.Replace(content))

	var s Solution
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil || !strings.HasPrefix(cleaned, "{") {
		return &Solution{RawResponse: content, Error: ParseError}
	}

	return &s
}
