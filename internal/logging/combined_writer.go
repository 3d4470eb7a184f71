// ABOUTME: io.Writer that fans log output out to several destinations.
// ABOUTME: Collects every writer's error instead of stopping at the first.
package logging

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to every writer; one failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
