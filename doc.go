// Package snacks provides scanning combinators built on package parse.
//
// The combinators find items embedded in otherwise irrelevant text:
//
//   - FindFirst, FindAll and FindAllInto search for a literal needle and
//     try an item parser at every occurrence, skipping occurrences where the
//     item does not match.
//   - TakeAll and TakeAllInto collect consecutive items, each optionally
//     preceded by a prefix that is skipped on a best-effort basis.
//   - RecognizeSeparated0 and RecognizeSeparated1 recognize a run of
//     separated items and return the consumed span.
//
// Each combinator returns a parse.Parser, so combinators nest freely. None of
// them keeps state between calls.
//
// Finding nothing and failing are different outcomes. FindAll and TakeAll
// return an empty result for input without matches, while FindFirst fails
// with parse.KindNotFound and RecognizeSeparated1 with
// parse.KindSeparatedListEmpty.
package snacks
