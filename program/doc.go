// Package program converts whole programs between instruction lists and
// flat word images.
//
// Every pass is fail-slow: each instruction or word is processed even after
// an earlier one fails, and all failures are returned together, ordered by
// position. A pass that reports any failure returns no output at all.
package program
