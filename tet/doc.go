// Package tet implements the rules of a falling-block puzzle on a fixed 16x10 board.
//
// Besides the usual move, rotate, land and line-clear cycle, a clear splits the landed
// cells along the lowest removed row into connected same-colored clumps. Each clump
// becomes a fragment piece that falls on its own until it lands. Fragments clear rows
// when they land but never split again.
//
// A Game is driven from a single goroutine: every method mutates the board or the
// active piece synchronously and returns once the resulting landing, clears and
// fragment falls are complete.
package tet
