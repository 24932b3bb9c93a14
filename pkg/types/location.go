package types

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// noLocationDesc is the fixed rendering of the NA sentinel.
const noLocationDesc = "[No location information]"

// Location is an immutable snapshot of a position within parsed or
// generated content, captured at the moment a diagnostic is reported.
// It is shared by pointer; the atomic description cache makes the
// struct non-copyable under vet.
//
// All four numeric fields use -1 to mean "unknown/not applicable":
// byte offsets are typically absent for textual sources, line and
// column for binary ones. No range validation is performed.
type Location struct {
	source ContentRef

	byteOffset int64
	charOffset int64

	line   int32 // 1-based
	column int32 // 1-based

	// set only on the NA sentinel; a Location constructed with all
	// sentinel field values still renders the normal form.
	unavailable bool

	// lazily built rendering of source; never part of equality.
	desc atomic.Pointer[string]
}

// NA is the shared "no location information available" sentinel. It
// renders as the fixed literal "[No location information]". A
// Location constructed with the same field values is an ordinary
// value and renders the normal "[Source: ...]" form, though it still
// compares equal to NA.
var NA = &Location{
	source:      UnknownRef(),
	byteOffset:  -1,
	charOffset:  -1,
	line:        -1,
	column:      -1,
	unavailable: true,
}

// NewLocation returns a Location with the given origin and offsets.
// Field values are stored verbatim (use -1 for unknown); a nil source
// is replaced by UnknownRef. Never fails.
func NewLocation(source ContentRef, byteOffset, charOffset int64, line, column int32) *Location {
	if source == nil {
		source = UnknownRef()
	}
	return &Location{
		source:     source,
		byteOffset: byteOffset,
		charOffset: charOffset,
		line:       line,
		column:     column,
	}
}

// NewCharLocation returns a Location for content with no
// byte-addressable offset; equivalent to NewLocation with a -1
// byteOffset.
func NewCharLocation(source ContentRef, charOffset int64, line, column int32) *Location {
	return NewLocation(source, -1, charOffset, line, column)
}

// Source returns the content origin. Never nil.
func (l *Location) Source() ContentRef {
	return l.source
}

// ByteOffset returns the 0-based byte offset, or -1 if unknown.
func (l *Location) ByteOffset() int64 {
	return l.byteOffset
}

// CharOffset returns the 0-based character offset, or -1 if unknown.
func (l *Location) CharOffset() int64 {
	return l.charOffset
}

// Line returns the 1-based line number, or -1 if unknown (typical for
// binary content).
func (l *Location) Line() int32 {
	return l.line
}

// Column returns the 1-based column number, or -1 if unknown.
func (l *Location) Column() int32 {
	return l.column
}

// SourceDescription renders the content origin, building the text on
// first use and retaining it. Two goroutines racing on the first call
// may each invoke BuildDescription; the results are equal, so the
// lost write is benign and no lock is taken.
func (l *Location) SourceDescription() string {
	if d := l.desc.Load(); d != nil {
		return *d
	}
	d := l.source.BuildDescription()
	l.desc.Store(&d)
	return d
}

// OffsetDescription returns the "line: {line}, column: {column}"
// fragment. Field values are rendered verbatim, -1 sentinels
// included; interpreting them is up to the caller.
func (l *Location) OffsetDescription() string {
	var sb strings.Builder
	sb.Grow(24)
	return l.AppendOffsetDescription(&sb).String()
}

// AppendOffsetDescription appends the offset fragment to sb and
// returns sb, for composing larger diagnostic messages without
// intermediate allocations.
func (l *Location) AppendOffsetDescription(sb *strings.Builder) *strings.Builder {
	sb.WriteString("line: ")
	sb.WriteString(strconv.FormatInt(int64(l.line), 10))
	sb.WriteString(", column: ")
	sb.WriteString(strconv.FormatInt(int64(l.column), 10))
	return sb
}

// Equal reports whether l and other carry the same source and
// offsets. Sources are compared with ==, so ContentRef
// implementations must be comparable; the cached description never
// participates. NA compares by fields like any other value.
func (l *Location) Equal(other *Location) bool {
	if other == nil {
		return false
	}
	if l == other {
		return true
	}
	return l.source == other.source &&
		l.line == other.line &&
		l.column == other.column &&
		l.charOffset == other.charOffset &&
		l.byteOffset == other.byteOffset
}

// Hash returns a hash consistent with Equal: equal locations hash
// equal. The mixing formula is not a stable contract across releases.
func (l *Location) Hash() uint32 {
	h := uint32(1)
	if l.source != nil {
		h = 2
	}
	h ^= uint32(l.line)
	h += uint32(l.column)
	h ^= uint32(int32(l.charOffset))
	h += uint32(int32(l.byteOffset))
	return h
}

// String implements Stringer. The NA sentinel renders the fixed
// literal "[No location information]"; every other value renders
// "[Source: {description}; line: {line}, column: {column}]".
func (l *Location) String() string {
	if l.unavailable {
		return noLocationDesc
	}
	desc := l.SourceDescription()
	var sb strings.Builder
	sb.Grow(len(desc) + 32)
	sb.WriteString("[Source: ")
	sb.WriteString(desc)
	sb.WriteString("; ")
	l.AppendOffsetDescription(&sb)
	sb.WriteByte(']')
	return sb.String()
}

// AppendString appends the String rendering to sb and returns sb.
func (l *Location) AppendString(sb *strings.Builder) *strings.Builder {
	if l.unavailable {
		sb.WriteString(noLocationDesc)
		return sb
	}
	sb.WriteString("[Source: ")
	sb.WriteString(l.SourceDescription())
	sb.WriteString("; ")
	l.AppendOffsetDescription(sb)
	sb.WriteByte(']')
	return sb
}
