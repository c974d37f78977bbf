package pagetable

import (
	"bytes"
	"net/http"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func releaseBuffer(b *bytes.Buffer) {
	b.Reset()
	bufferPool.Put(b)
}

// buffered holds a page's output until it rendered without error, so a
// failed render never leaves half a page on the wire.
type buffered struct {
	http.ResponseWriter
	buf *bytes.Buffer
}

func newBuffered(w http.ResponseWriter) buffered {
	return buffered{ResponseWriter: w, buf: getBuffer()}
}

func (w buffered) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// close writes the status and buffered body to the underlying writer.
func (w buffered) close(status int) error {
	defer releaseBuffer(w.buf)
	w.ResponseWriter.WriteHeader(status)
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	return err
}

// discard drops the buffered body.
func (w buffered) discard() {
	releaseBuffer(w.buf)
}
