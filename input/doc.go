// Package input loads vector point files into datasets.
//
// The on-disk format is a JSON object with one recognized top-level field,
// "points", holding an ordered array of records. Each record carries an "id"
// string, a "vector" array of numbers, and a "payload" object. Unknown
// top-level fields are ignored and not preserved. Loading is strict: a
// missing required field anywhere in that shape fails the whole load and
// nothing is returned.
package input
