// Package encode renders syntax trees back to Plorth source text.
//
// The rendering is canonical rather than faithful to the original input:
// array elements are comma separated inside brackets, object properties are
// quoted-key pairs inside braces, quote children are space separated inside
// parentheses and a word definition is written as ": name ;". Insertion order
// of every container is preserved exactly.
//
// Encode takes functional options for indentation, compact ("wire") output
// and ANSI colors; see [EncodeOption].
package encode
