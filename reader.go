package swiftcols

import (
	"bytes"
	"io"
)

const defaultBufferSize = 1 << 12 // 4096 bytes

// Reader streams lines from a source and projects each one onto the configured columns.
type Reader struct {
	src io.Reader

	// Separator splits each line into fields. Nil means DefaultSeparator.
	Separator *Separator
	// Columns lists the 1-based positions to project, in output order.
	Columns []int

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	lineBuf  []byte
	finished bool
	line     int
}

// NewReader creates a Reader that consumes lines from r, panicking if r is nil.
// The whitespace separator is used until Separator is set.
func NewReader(r io.Reader, columns []int) *Reader {
	if r == nil {
		panic("swiftcols: reader source cannot be nil")
	}

	return &Reader{
		src:       r,
		Separator: DefaultSeparator(),
		Columns:   columns,
		buf:       make([]byte, defaultBufferSize),
		lineBuf:   make([]byte, 0, 256),
	}
}

// Line returns the number of lines returned so far.
func (r *Reader) Line() int {
	if r == nil {
		return 0
	}
	return r.line
}

// ReadLine returns the next line without its terminator. Lines end at "\n"; one "\r" left
// before it is dropped, other carriage returns stay in the line. A final line without a
// terminator is still returned. io.EOF signals the end.
func (r *Reader) ReadLine() (string, error) {
	if r == nil || r.src == nil {
		return "", io.EOF
	}
	if r.finished {
		return "", io.EOF
	}

	r.lineBuf = r.lineBuf[:0]

	for {
		if r.bufPos >= r.bufLen {
			if r.bufErr != nil {
				err := r.bufErr
				r.bufErr = nil
				if err == io.EOF {
					r.finished = true
					// Flush a trailing line if data ended without a newline.
					if len(r.lineBuf) > 0 {
						r.line++
						return trimTerminator(string(r.lineBuf)), nil
					}
					return "", io.EOF
				}
				return "", err
			}

			n, err := r.src.Read(r.buf)
			if n == 0 {
				if err != nil {
					r.bufErr = err
				}
				continue
			}
			r.bufPos = 0
			r.bufLen = n
			r.bufErr = err
		}

		data := r.buf[r.bufPos:r.bufLen]
		next := bytes.IndexByte(data, '\n')
		if next < 0 {
			r.lineBuf = append(r.lineBuf, data...)
			r.bufPos = r.bufLen
			continue
		}

		r.lineBuf = append(r.lineBuf, data[:next]...)
		r.bufPos += next + 1
		r.line++
		return trimTerminator(string(r.lineBuf)), nil
	}
}

// Read projects the next line onto Columns. io.EOF signals that no more lines remain.
func (r *Reader) Read() (Row, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	sep := r.Separator
	if sep == nil {
		sep = DefaultSeparator()
	}
	return projectFields(sep.Split(line), r.Columns), nil
}

// ReadAll projects every remaining line, returning the rows and the first non-EOF error.
func (r *Reader) ReadAll() (rows []Row, err error) {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
