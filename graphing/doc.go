// SPDX-License-Identifier: MIT

// Package graphing turns a 2D plot expression (y as a function of x, in the
// calc grammar with functions enabled) into sampled series and a static PNG
// preview drawn with gonum.org/v1/plot.
//
// Samples where the expression is undefined (division by zero, ln of a
// non-positive value, overflow) split the curve into separate series so that
// asymptotes are not bridged by a line.
package graphing
