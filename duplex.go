// Package duplex combines a separate reader and a separate writer into one
// stream that can do both. Many APIs hand out the two halves as distinct
// objects (the input and output sides of a terminal, the two directions of a
// split network connection) while other APIs want a single io.ReadWriter;
// this package is the glue between the two shapes.
//
// The adapter adds no semantics of its own: every call maps 1:1 onto the
// corresponding call on the wrapped half, and every error comes back
// verbatim.
package duplex

import (
	"io"
)

// Duplex holds a reader and a writer and forwards Read calls to the former
// and Write/Flush/Close calls to the latter. The two halves are independent;
// the Duplex never synchronizes between them and never buffers bytes itself.
type Duplex struct {
	r io.Reader
	w io.Writer
}

// Flusher is the interface of writers that keep accepted bytes buffered and
// can push them toward their destination on demand. bufio.Writer satisfies
// it.
type Flusher interface {
	Flush() error
}

// ReaderCloner is implemented by readers that can produce an independent
// duplicate of themselves, equal in state at the moment of the call.
type ReaderCloner interface {
	io.Reader
	CloneReader() io.Reader
}

// WriterCloner is the writer-side counterpart of ReaderCloner.
type WriterCloner interface {
	io.Writer
	CloneWriter() io.Writer
}

// New combines a reader and a writer into a Duplex. The Duplex takes
// ownership of both: they should not be used directly afterwards, except
// after getting them back through Parts.
func New(r io.Reader, w io.Writer) *Duplex {
	return &Duplex{
		r: r,
		w: w,
	}
}

// Parts decomposes the Duplex back into the reader and writer it was built
// from, exactly as they were passed to New. The Duplex must not be used
// after this call.
func (d *Duplex) Parts() (io.Reader, io.Writer) {
	return d.r, d.w
}

func (d *Duplex) Read(p []byte) (n int, err error) {
	return d.r.Read(p)
}

func (d *Duplex) Write(p []byte) (n int, err error) {
	return d.w.Write(p)
}

// Flush forwards to the writer if it supports flushing. A writer without a
// Flush method has nothing pending, so this is a no-op for it.
func (d *Duplex) Flush() error {
	if f, ok := d.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close signals that no more writes will happen, by closing the writer if it
// is an io.Closer. The reader is not touched; reading may continue until the
// reader itself reports the end of its stream.
func (d *Duplex) Close() error {
	if c, ok := d.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Duplicate produces a new Duplex over independent duplicates of the current
// reader and writer. It requires both halves to support duplication and
// reports false if either one does not. After the call the original and the
// duplicate evolve independently.
func (d *Duplex) Duplicate() (*Duplex, bool) {
	rc, ok := d.r.(ReaderCloner)
	if !ok {
		return nil, false
	}
	wc, ok := d.w.(WriterCloner)
	if !ok {
		return nil, false
	}
	return New(rc.CloneReader(), wc.CloneWriter()), true
}
