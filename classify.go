package main

import (
	"errors"
	"io"
)

// errBinary is the classifier's verdict that a stream is not text.
var errBinary = errors.New("binary content")

const classifyChunkSize = 16 * 1024

// binaryOddRatio is the fraction of control bytes (outside TAB/LF/CR) at or
// above which a stream is considered binary.
const binaryOddRatio = 0.3

// classifyReader reads r to exhaustion and returns the number of line
// terminators it contains, or errBinary if the content doesn't look like
// text. A CRLF pair counts as one line (via the CR; the following LF is
// suppressed), so bare-LF, bare-CR, and CRLF files all count the same way.
// A trailing line without a terminator is not counted.
//
// Any NUL byte makes the stream binary immediately. Otherwise the verdict
// comes from the ratio of control bytes below ASCII 32 that aren't TAB, LF,
// or CR. An empty stream is text with zero lines.
func classifyReader(r io.Reader) (int, error) {
	buf := make([]byte, classifyChunkSize)

	var total, lines, odd int
	prevCR := false

	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			total++
			switch b {
			case 0:
				return 0, errBinary
			case '\r':
				lines++
				prevCR = true
				continue
			case '\n':
				if !prevCR {
					lines++
				}
			case '\t':
			default:
				if b < 32 {
					odd++
				}
			}
			prevCR = false
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if total > 0 && float64(odd)/float64(total) >= binaryOddRatio {
		return 0, errBinary
	}
	return lines, nil
}
