package types

// ContentRef identifies where parsed or generated content comes from
// (a file, a stream, a URL) without retaining the content itself.
//
// Implementations must be comparable: Location equality compares refs
// with ==, so a ref built on non-comparable fields (slices, maps)
// cannot be used. BuildDescription must be deterministic; if it
// panics, the panic propagates unmodified through Location.
type ContentRef interface {
	// Kind returns a short tag for the origin class ("file", "stream", ...).
	Kind() string
	// BuildDescription renders a human-readable description of the
	// origin, as embedded in Location.String output.
	BuildDescription() string
}

// unknownRef is the canonical "no known source" sentinel. Empty
// struct, so every sentinel value compares equal.
type unknownRef struct{}

// Kind returns "unknown".
func (unknownRef) Kind() string {
	return "unknown"
}

// BuildDescription returns "UNKNOWN".
func (unknownRef) BuildDescription() string {
	return "UNKNOWN"
}

// UnknownRef returns the canonical sentinel for content whose origin
// is not known. Constructing a Location with a nil source substitutes
// this sentinel.
func UnknownRef() ContentRef {
	return unknownRef{}
}

// FileRef identifies content read from or written to a file.
type FileRef struct {
	FilePath string
}

// Kind returns "file".
func (f FileRef) Kind() string {
	return "file"
}

// BuildDescription returns the file path.
func (f FileRef) BuildDescription() string {
	return f.FilePath
}

// StreamRef identifies content carried by a stream with no usable
// path, such as a pipe, a socket, or standard input.
type StreamRef struct {
	Name string // e.g. "stdin"
}

// Kind returns "stream".
func (s StreamRef) Kind() string {
	return "stream"
}

// BuildDescription returns the stream name.
func (s StreamRef) BuildDescription() string {
	return s.Name
}

// URLRef identifies content fetched from or written to a URL.
type URLRef struct {
	URL string
}

// Kind returns "url".
func (u URLRef) Kind() string {
	return "url"
}

// BuildDescription returns the URL.
func (u URLRef) BuildDescription() string {
	return u.URL
}
