// Package ioutil contains writer helpers used by the rendering code.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, sums the bytes written and remembers the first error.
// After a failure every subsequent write is a no-op, so RenderTo implementations
// can write all parts unconditionally and check [CountingWriter.Result] once.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = cw.w.Write(p)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, errtrace.Wrap(cw.err)
	}
	return n, nil
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, errtrace.Wrap(cw.err)
	}
	return n, nil
}

// WriteStrings writes all parts in order, stopping at the first error.
func (cw *CountingWriter) WriteStrings(parts ...string) *CountingWriter {
	for _, s := range parts {
		if _, err := cw.WriteString(s); err != nil {
			break
		}
	}
	return cw
}

// Call executes a RenderTo-style function against the underlying writer.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	n, err := fn(cw.w)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return cw
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
