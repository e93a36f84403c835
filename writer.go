package swiftcols

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// DefaultOutputSeparator joins fields when no output separator is configured.
const DefaultOutputSeparator = " "

var (
	errNilWriter      = errors.New("swiftcols: writer is nil")
	errWriterNoTarget = errors.New("swiftcols: writer destination cannot be nil")
)

// Writer formats projected rows. Absent fields are dropped and present ones are joined with
// Separator. Without Align every row is flushed as soon as it is written. With Align set,
// rows are held until Flush so every column can be padded to its widest value across the
// whole input.
type Writer struct {
	dst *bufio.Writer

	// Separator joins present fields and doubles as the padding filler in aligned mode.
	// An empty Separator is allowed; padding is then skipped.
	Separator string
	// Align buffers rows until Flush and pads each column to the widest present value.
	Align bool
	// UseCRLF writes lines terminated with \r\n when set.
	UseCRLF bool

	pending alignBuffer
	err     error
}

// NewWriter creates a Writer with the default output separator and internal buffering.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:       bufio.NewWriterSize(w, defaultBufferSize),
		Separator: DefaultOutputSeparator,
	}
}

// Reset updates the underlying writer while preserving the configuration flags.
// Rows still waiting for alignment are discarded.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.pending.reset()
	w.err = nil
}

// Write emits row and flushes it to the underlying writer, or holds it for the next Flush
// when Align is set.
func (w *Writer) Write(row Row) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	if w.Align {
		w.pending.add(row)
		return nil
	}
	if err := w.writeRow(row, nil); err != nil {
		w.err = err
		return err
	}
	// Streaming rows reach dst as soon as they are written.
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes multiple rows, stopping at the first error.
func (w *Writer) WriteAll(rows []Row) error {
	if w == nil {
		return errNilWriter
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any rows held for alignment, padded to the shared column widths, then flushes
// buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if _, err := w.pending.flush(w.writeRow); err != nil {
		w.err = err
		return err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Buffered returns the number of rows waiting for the next Flush.
func (w *Writer) Buffered() int {
	if w == nil {
		return 0
	}
	return len(w.pending.rows)
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

// writeRow joins the present fields of row. When widths is non-nil each present field at
// position k is padded with Separator until it is at least widths[k] characters long.
func (w *Writer) writeRow(row Row, widths []int) error {
	first := true
	for k, f := range row {
		if !f.Present {
			continue
		}
		if !first {
			if _, err := w.dst.WriteString(w.Separator); err != nil {
				return err
			}
		}
		first = false
		if _, err := w.dst.WriteString(f.Value); err != nil {
			return err
		}
		if k < len(widths) {
			if err := w.pad(utf8.RuneCountInString(f.Value), widths[k]); err != nil {
				return err
			}
		}
	}

	if w.UseCRLF {
		_, err := w.dst.WriteString("\r\n")
		return err
	}
	return w.dst.WriteByte('\n')
}

// pad appends whole copies of Separator until n reaches width.
func (w *Writer) pad(n, width int) error {
	step := utf8.RuneCountInString(w.Separator)
	if step == 0 {
		return nil
	}
	for n < width {
		if _, err := w.dst.WriteString(w.Separator); err != nil {
			return err
		}
		n += step
	}
	return nil
}
