package csvsource

import (
	"bufio"
	"io"
)

// lineReader yields only entire newline-delimited lines. When tailing a CSV
// file that is still being written, this keeps partial trailing lines out of
// the CSV parser until their newline arrives.
//
// Each Read drains every complete line currently available from the source
// into an internal buffer and returns as much of that buffer as fits in b;
// the remainder is carried over, so callers with small buffers still see
// every byte of every complete line.
type lineReader struct {
	r       *bufio.Reader
	pending []byte // complete lines awaiting delivery
	partial []byte // trailing bytes still missing their newline
}

var _ io.Reader = (*lineReader)(nil)

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

func (l *lineReader) Read(b []byte) (int, error) {
	for {
		data, err := l.r.ReadBytes(byte('\n'))
		l.partial = append(l.partial, data...)
		if err != nil {
			break
		}
		l.pending = append(l.pending, l.partial...)
		l.partial = l.partial[:0]
	}
	if len(l.pending) == 0 {
		return 0, io.EOF
	}
	n := copy(b, l.pending)
	l.pending = l.pending[:copy(l.pending, l.pending[n:])]
	return n, nil
}
