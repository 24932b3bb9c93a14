// Package parsepoint provides position-tracking value types for
// parser and generator diagnostics.
//
// A Location is an immutable snapshot of "where in the input or
// output did this happen", captured at the moment a diagnostic is
// reported. It carries byte/character offsets, 1-based line and
// column numbers (-1 throughout means unknown), and a reference to
// the content's origin that renders lazily into human-readable text.
//
// # Basic Usage
//
// Capture a location when reporting a parse error:
//
//	src := parsepoint.FileRef{FilePath: "config.json"}
//	loc := parsepoint.NewLocation(src, byteOff, charOff, line, col)
//	return fmt.Errorf("unexpected token at %s", loc)
//
// which renders as:
//
//	unexpected token at [Source: config.json; line: 3, column: 7]
//
// When no position is available, use the shared sentinel:
//
//	return fmt.Errorf("parse failed at %s", parsepoint.NA)
package parsepoint

import (
	"github.com/parsepoint/parsepoint/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/parsepoint/parsepoint" without subpackages.
type (
	// Location is an immutable position snapshot.
	Location = types.Location

	// ContentRef identifies where content came from without
	// retaining the content itself.
	ContentRef = types.ContentRef

	// FileRef identifies content read from or written to a file.
	FileRef = types.FileRef

	// StreamRef identifies content carried by a pipe, socket, or
	// standard stream.
	StreamRef = types.StreamRef

	// URLRef identifies content fetched from or written to a URL.
	URLRef = types.URLRef
)

// NA is the shared "no location information available" sentinel.
var NA = types.NA

// NewLocation returns a Location with the given origin and offsets;
// -1 means unknown, a nil source means unknown origin.
func NewLocation(source ContentRef, byteOffset, charOffset int64, line, column int32) *Location {
	return types.NewLocation(source, byteOffset, charOffset, line, column)
}

// NewCharLocation returns a Location for content with no
// byte-addressable offset.
func NewCharLocation(source ContentRef, charOffset int64, line, column int32) *Location {
	return types.NewCharLocation(source, charOffset, line, column)
}

// LocationAt builds a Location for a byte offset within content,
// deriving line and column from the buffer.
func LocationAt(source ContentRef, content []byte, byteOffset int64) *Location {
	return types.LocationAt(source, content, byteOffset)
}

// UnknownRef returns the canonical sentinel for content whose origin
// is not known.
func UnknownRef() ContentRef {
	return types.UnknownRef()
}
