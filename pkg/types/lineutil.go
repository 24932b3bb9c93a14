package types

// ComputeLineColumn computes line and column numbers from a byte
// offset in content. Lines and columns are 1-based; offsets past the
// end of content clamp to the final position.
func ComputeLineColumn(content []byte, byteOffset int64) (line, column int32) {
	line = 1
	column = 1
	for i := int64(0); i < byteOffset && i < int64(len(content)); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// LocationAt builds a Location for a byte offset within content,
// deriving line and column from the buffer. The character offset is
// left unknown; byte-addressed content has no separate character
// count.
func LocationAt(source ContentRef, content []byte, byteOffset int64) *Location {
	line, column := ComputeLineColumn(content, byteOffset)
	return NewLocation(source, byteOffset, -1, line, column)
}
