// Package llkrt is the root of an LL(k) parser/scanner runtime: a
// generator-agnostic engine that drives generator-emitted grammar and
// scanner tables (package tables) over an input string, producing
// generator-supplied semantic values.
//
// A typical caller wires the pieces in package scan, tokstream, predict, and
// rtparse together directly rather than importing this package, which
// exists mainly to give the module a documented entry point; see the
// runtime_test.go file alongside it for a complete wiring example.
package llkrt
