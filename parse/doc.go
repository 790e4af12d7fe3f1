// SPDX-License-Identifier: MIT

// Package parse turns text rows into linear systems for package matrix.
//
// Row format:
//
//	Comma-separated numeric tokens; surrounding whitespace is trimmed and
//	empty tokens are dropped. A token containing '/' is split on '/' and
//	reduced left to right by division, so "3/5" is 0.6 and "8/2/2" is 2.
//
// Block format (ReadSystems):
//
//	Blank lines are skipped. The first row of a block has n tokens and fixes
//	the block dimension; it is followed by n-1 more matrix rows and one
//	right-hand-side row, each with exactly n tokens. Blocks follow each
//	other directly and may have different dimensions.
//
//	1, 1, -2
//	3, -1, 1
//	2, 3, 5
//	7, 2, 8
//
// Interactive input (Prompter) reads a single block row by row and
// re-prompts on malformed rows instead of failing.
package parse
