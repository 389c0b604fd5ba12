package main

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReaderLineCounts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bare LF lines",
			input: "a\nb\nc\n",
			want:  3,
		},
		{
			name:  "bare CR lines",
			input: "a\rb\rc\r",
			want:  3,
		},
		{
			name:  "CRLF counts once per line",
			input: "one\r\ntwo\r\nthree\r\n",
			want:  3,
		},
		{
			name:  "mixed CRLF and LF",
			input: "a\r\nb\n",
			want:  2,
		},
		{
			name:  "trailing unterminated line not counted",
			input: "a\nb",
			want:  1,
		},
		{
			name:  "empty stream is zero lines",
			input: "",
			want:  0,
		},
		{
			name:  "no terminators at all",
			input: "just one long line",
			want:  0,
		},
		{
			name:  "tabs are ordinary text",
			input: "col1\tcol2\ncol3\tcol4\n",
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifyReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyReaderBinaryVerdict(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		binary bool
	}{
		{
			name:   "NUL byte anywhere means binary",
			input:  "perfectly fine text\x00more text\n",
			binary: true,
		},
		{
			name:   "NUL as first byte",
			input:  "\x00",
			binary: true,
		},
		{
			name:   "odd ratio at threshold is binary",
			input:  "\x01\x02\x03abcdefg", // 3 odd of 10 bytes = 0.3
			binary: true,
		},
		{
			name:   "odd ratio below threshold is text",
			input:  "\x01\x02abcdefgh", // 2 odd of 10 bytes = 0.2
			binary: false,
		},
		{
			name:   "control-free content is never binary",
			input:  "plain text\nwith lines\r\n",
			binary: false,
		},
		{
			name:   "empty stream is not binary",
			input:  "",
			binary: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifyReader(strings.NewReader(tt.input))
			if tt.binary {
				assert.ErrorIs(t, err, errBinary)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// CR and LF of a CRLF pair arriving in separate reads must still count once.
func TestClassifyReaderCRLFAcrossChunks(t *testing.T) {
	got, err := classifyReader(iotest.OneByteReader(strings.NewReader("a\r\nb\r\n")))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestClassifyReaderPropagatesReadErrors(t *testing.T) {
	boom := errors.New("disk went away")
	_, err := classifyReader(io.MultiReader(strings.NewReader("a\n"), iotest.ErrReader(boom)))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errBinary)
}
