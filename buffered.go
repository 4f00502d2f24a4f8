package duplex

import (
	"bufio"
	"io"
	"os"
)

// BufferedReader is the subset of bufio.Reader needed for buffered reading
// through a duplex: look at upcoming bytes without consuming them, then
// explicitly discard some of them. A *bufio.Reader satisfies it directly.
type BufferedReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
	Buffered() int
}

// BufDuplex is a Duplex whose reader is buffered, forwarding the peek and
// discard operations in addition to everything Duplex forwards. Use it when
// the code on the other side of the adapter wants to inspect input before
// consuming it.
type BufDuplex struct {
	Duplex
	br BufferedReader
}

// NewBuffered combines a buffered reader and a writer into a BufDuplex.
func NewBuffered(r BufferedReader, w io.Writer) *BufDuplex {
	return &BufDuplex{
		Duplex: Duplex{r: r, w: w},
		br:     r,
	}
}

// Parts decomposes the BufDuplex back into its reader and writer. The
// BufDuplex must not be used after this call.
func (d *BufDuplex) Parts() (BufferedReader, io.Writer) {
	return d.br, d.w
}

// Peek returns the next n bytes of the reader without advancing it. The
// bytes stay valid until the next read, per the wrapped reader's contract.
func (d *BufDuplex) Peek(n int) ([]byte, error) {
	return d.br.Peek(n)
}

// Discard skips the next n bytes of the reader.
func (d *BufDuplex) Discard(n int) (discarded int, err error) {
	return d.br.Discard(n)
}

// Buffered reports how many bytes can be read without hitting the underlying
// source.
func (d *BufDuplex) Buffered() int {
	return d.br.Buffered()
}

// Stdio combines the process standard input and standard output into a
// single stream, with the input side buffered.
func Stdio() *BufDuplex {
	return NewBuffered(bufio.NewReader(os.Stdin), os.Stdout)
}
