// SPDX-License-Identifier: MIT

// Package workbench is the caller-facing boundary of the matrix engine.
//
// Compute dispatches one Op over row-major operands and never returns an
// error past its boundary: failures become a Result whose Text is one of the
// sentinel strings (TextSingular, TextDimensionMismatch, TextFailed) while
// Err keeps the cause for logging. Calculator holds the operand buffers of an
// interactive session (sizes MinSize..MaxSize) and the selected Op.
//
// Square operands larger than matrix.MaxCofactorSize are routed to the LU
// kernels of matrix/ops.
package workbench
