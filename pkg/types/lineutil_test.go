package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLineColumn(t *testing.T) {
	tests := []struct {
		name       string
		content    []byte
		byteOffset int64
		wantLine   int32
		wantColumn int32
	}{
		{
			name:       "empty content at offset 0",
			content:    []byte{},
			byteOffset: 0,
			wantLine:   1,
			wantColumn: 1,
		},
		{
			name:       "single line at offset 2",
			content:    []byte("hello"),
			byteOffset: 2,
			wantLine:   1,
			wantColumn: 3,
		},
		{
			name:       "multi-line at offset 7",
			content:    []byte("hello\nworld"),
			byteOffset: 7,
			wantLine:   2,
			wantColumn: 2,
		},
		{
			name:       "offset at newline",
			content:    []byte("hello\nworld"),
			byteOffset: 5,
			wantLine:   1,
			wantColumn: 6,
		},
		{
			name:       "offset beyond content length",
			content:    []byte("hello"),
			byteOffset: 100,
			wantLine:   1,
			wantColumn: 6,
		},
		{
			name:       "offset at start of second line",
			content:    []byte("hello\nworld"),
			byteOffset: 6,
			wantLine:   2,
			wantColumn: 1,
		},
		{
			name:       "multiple newlines",
			content:    []byte("line1\nline2\nline3"),
			byteOffset: 12,
			wantLine:   3,
			wantColumn: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLine, gotColumn := ComputeLineColumn(tt.content, tt.byteOffset)
			assert.Equal(t, tt.wantLine, gotLine)
			assert.Equal(t, tt.wantColumn, gotColumn)
		})
	}
}

func TestLocationAt(t *testing.T) {
	src := FileRef{FilePath: "config.json"}
	content := []byte("{\n  \"key\": 1\n}")

	loc := LocationAt(src, content, 5)

	assert.Equal(t, src, loc.Source())
	assert.Equal(t, int64(5), loc.ByteOffset())
	assert.Equal(t, int64(-1), loc.CharOffset())
	assert.Equal(t, int32(2), loc.Line())
	assert.Equal(t, int32(4), loc.Column())
	assert.Equal(t, "[Source: config.json; line: 2, column: 4]", loc.String())
}

func TestLocationAt_NilSource(t *testing.T) {
	loc := LocationAt(nil, []byte("x"), 0)

	assert.Equal(t, UnknownRef(), loc.Source())
	assert.Equal(t, int32(1), loc.Line())
	assert.Equal(t, int32(1), loc.Column())
}
