package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter holds writes in memory until Flush, for output that must
// not reach the terminal while a full-screen program owns it. Safe for
// concurrent use.
type DeferredWriter struct {
	// Limit caps the buffered bytes. Writes past it are counted and dropped.
	// Zero means no limit.
	Limit int

	mu      sync.Mutex
	buf     bytes.Buffer
	dropped int
}

// Write buffers p. It always reports len(p) so loggers never see a short
// write, even when p is dropped.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Limit > 0 && d.buf.Len()+len(p) > d.Limit {
		d.dropped += len(p)
		return len(p), nil
	}
	return d.buf.Write(p)
}

// Dropped returns how many bytes were discarded because of Limit.
func (d *DeferredWriter) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Flush writes the buffered data to w, followed by a note when anything was
// dropped, and resets the writer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() > 0 {
		if _, err := d.buf.WriteTo(w); err != nil {
			return err
		}
	}

	if d.dropped > 0 {
		if _, err := fmt.Fprintf(w, "... %d bytes of output dropped\n", d.dropped); err != nil {
			return err
		}
		d.dropped = 0
	}
	return nil
}
