// Package parse normalizes and parses free-form language model output.
//
// Every function in this package is pure and total: malformed input yields an
// empty result rather than an error, and all functions are safe for concurrent
// use.
//
// Normalization:
//
//	parse.NormalizeAnswer("The Eiffel Tower!") // "eiffel tower"
//
// Structured output:
//
//	items := parse.ParseNumberedList("1) Paris.\n2) Rome,\n")
//	kind, arg := parse.ParseAction("Search[Eiffel Tower]")
package parse
