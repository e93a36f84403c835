package swiftcols

import "unicode/utf8"

type alignState uint8

const (
	// flushed is the zero state: nothing is held and a flush emits nothing.
	flushed alignState = iota
	accumulating
)

// alignBuffer holds rows for aligned output. It accumulates rows and their per-column widths,
// then hands everything over in a single flush and returns to the flushed state.
type alignBuffer struct {
	rows []Row
	// widths[k] is the widest present value seen at position k; columns with no present
	// value keep 0 and never cause padding.
	widths []int
	state  alignState
}

func (b *alignBuffer) add(row Row) {
	b.state = accumulating
	for len(b.widths) < len(row) {
		b.widths = append(b.widths, 0)
	}
	for k, f := range row {
		if !f.Present {
			continue
		}
		if n := utf8.RuneCountInString(f.Value); n > b.widths[k] {
			b.widths[k] = n
		}
	}
	b.rows = append(b.rows, row)
}

// flush emits every buffered row in input order with the final widths, then clears the buffer.
// It reports whether anything was emitted; a flush with no add since the previous one is a no-op.
// The buffer is cleared even when emit fails.
func (b *alignBuffer) flush(emit func(Row, []int) error) (bool, error) {
	if b.state != accumulating {
		return false, nil
	}
	defer b.reset()
	for _, row := range b.rows {
		if err := emit(row, b.widths); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (b *alignBuffer) reset() {
	b.rows = nil
	b.widths = nil
	b.state = flushed
}
