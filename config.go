package swiftcols

import (
	"context"
	"io"
	"log/slog"
)

// Config is the resolved configuration of one run. It is not modified once built.
type Config struct {
	// Separator splits input lines. Nil means DefaultSeparator.
	Separator *Separator
	// OutputSeparator joins and pads output fields.
	OutputSeparator string
	// Columns holds the resolved 1-based positions in output order.
	Columns []int
	// Align defers all output until end of input so columns can be padded to a common width.
	Align bool
}

// DefaultConfig returns a Config using whitespace input splitting and a single space between
// output fields. Columns must still be filled in.
func DefaultConfig() Config {
	return Config{
		Separator:       DefaultSeparator(),
		OutputSeparator: DefaultOutputSeparator,
	}
}

// LogValue renders the configuration for structured logging.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ifs", c.Separator.String()),
		slog.String("ofs", c.OutputSeparator),
		slog.Any("columns", c.Columns),
		slog.Bool("align", c.Align),
	)
}

// Run reads lines from in until EOF, projects them onto cfg.Columns and writes the result to out.
// ctx is checked between lines.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if len(cfg.Columns) == 0 {
		return ErrNoColumnsSpecified
	}
	logger := slog.Default()
	logger.Debug("Run started.", "config", cfg)

	r := NewReader(in, cfg.Columns)
	if cfg.Separator != nil {
		r.Separator = cfg.Separator
	}
	w := NewWriter(out)
	w.Separator = cfg.OutputSeparator
	w.Align = cfg.Align

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	if cfg.Align {
		logger.Debug("Flushing aligned rows.", "rows", w.Buffered())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logger.Debug("Run finished.", "lines", r.Line())
	return nil
}
