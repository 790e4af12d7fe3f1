// SPDX-License-Identifier: MIT

// Package gauss solves dense linear systems by Gaussian elimination.
//
// What is gauss?
//
//	A small solver plus the glue to feed it:
//		• matrix/    Square matrices, Solve, SolveAll (parallel batches), Residual
//		• parse/     comma-separated rows with fraction tokens (3/5), multi-block files, interactive prompt
//		• results/   append-only, comma-terminated result lines
//		• cmd/gauss  the command line: '-i' to enter rows, '-f filename' to parse a file
//
// Quick example:
//
//	 x +  y - 2z = 7
//	3x -  y +  z = 2      →  x = 2, y = 3, z = -1
//	2x + 3y + 5z = 8
//
// A system without a unique solution is reported explicitly, never as NaN;
// only the results file spells it "NaN,".
//
//	go install github.com/katalvlaran/gauss/cmd/gauss@latest
package gauss
