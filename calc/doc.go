// SPDX-License-Identifier: MIT

// Package calc evaluates arithmetic expressions over a restricted grammar.
//
// Grammar (precedence low → high):
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := ('+' | '-') unary | power
//	power  := atom ('^' unary)?           right-associative
//	atom   := number | ident | ident '(' expr ')' | '(' expr ')'
//
// Source text is tokenized, parsed by recursive descent into a small tree and
// only then evaluated; nothing is ever executed dynamically. Identifiers are
// rejected unless declared with WithVariables or enabled with WithFunctions.
//
// Entry points:
//   - Eval: one-shot evaluation of a keypad expression (numbers and operators).
//   - Compile: parse once, evaluate many times with bound variables (graph sampling).
//   - Keypad: the button-driven calculator state machine.
package calc
