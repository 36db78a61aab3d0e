// SPDX-License-Identifier: MIT

// Package lvlmath is a math study toolkit: a step-by-step problem solver
// backed by a language model, plus a set of small deterministic tools that
// work without any network access.
//
// Packages:
//
//	matrix/     Dense matrices, cofactor determinant/inverse, grid formatting
//	matrix/ops/ LU-backed determinant and inverse (gonum) for larger orders
//	workbench/  matrix workbench: sized operand grids, operation dispatch, sentinel texts
//	integral/   closed-form integral rules (power, trig, exponential, logarithmic, polynomial)
//	calc/       expression parser/evaluator and the keypad calculator state machine
//	graphing/   sampling of y = f(x) and PNG previews (gonum/plot)
//	solver/     prompt contract, completion clients (HTTP gateway, Gemini) and response parsing
//	history/    SQLite store of solved problems
//	config/     YAML configuration with environment overrides
//	server/     HTTP JSON API over all of the above
//
// The lvlmath command (cmd/lvlmath) runs the API and exposes every tool on
// the command line.
//
// Quick start:
//
//	go run ./cmd/lvlmath calc "2+3*4"
//	go run ./cmd/lvlmath matrix det --a "6,1,1;4,-2,5;2,8,7"
//	LOVABLE_API_KEY=... go run ./cmd/lvlmath serve
package lvlmath
