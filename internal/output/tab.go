// Package output provides translation result writers.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/txmap/internal/query"
	"github.com/inodb/txmap/internal/translate"
)

// TabWriter writes translation results in tab-delimited format: the
// original query columns followed by the chromosome and the converted
// position.
type TabWriter struct {
	w *bufio.Writer
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single result row.
func (tw *TabWriter) Write(q *query.Query, res *translate.Result) error {
	cols := make([]string, 0, len(q.Fields)+2)
	cols = append(cols, q.Fields...)
	cols = append(cols, res.Chrom, strconv.FormatInt(res.Position, 10))

	_, err := tw.w.WriteString(strings.Join(cols, "\t") + "\n")
	return err
}

// Flush writes any buffered rows to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
