// # SwiftCols: Streaming Column Projection and Alignment for Go
//
// SwiftCols selects, reorders and optionally aligns columns of delimited text streams. Lines are
// split on a field separator pattern, projected onto a user supplied list of 1-based column positions,
// and written back joined with an output separator.
//
// # Features
//
// - Column lists made of integers and inclusive ranges (`3..5`, `9..7`), resolved once in request order.
// - Regular expression field separators; consecutive separators collapse into one boundary.
// - Ragged rows: columns missing from a line are dropped from its output instead of failing the run.
// - Streaming mode writes every row as soon as it is read.
// - Aligned mode buffers the whole input and pads each column to the widest value, using the
//   output separator itself as the padding filler.
//
// # Getting Started
//
// The module path is `github.com/oleg578/swiftcols`. The `swiftcols` command in cmd/swiftcols wraps
// the library; `Run` is the entry point for embedding the same pipeline.
package swiftcols
