// Package document models a JSON document as a tree of tagged values.
//
// A [Value] carries a [Kind] and exactly one meaningful payload for that kind,
// so code that walks a document switches over the kind instead of asserting
// on interface{} types. Decoding keeps what a plain map would lose:
//
//   - Object members stay in source order.
//   - Numbers keep their literal text, so 1.50 is written back as 1.50.
//   - A repeated key keeps the position of its first occurrence and the
//     value of its last one.
//
// # Encoding
//
// [Encode] and [Marshal] produce the layout used by rust-analyzer project
// files generated by common tooling: a fixed number of spaces per level,
// "," between items, ": " between key and value, empty containers as {} and
// [], no trailing newline, and (with ASCII set) every character outside
// printable ASCII written as a \uXXXX escape.
//
//	v, err := document.Parse(data)
//	if err != nil {
//	    return err
//	}
//	out := document.Marshal(v, document.DefaultEncodeOptions)
package document
