package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleg578/swiftcols"
)

// Options is the outcome of a successful Parse.
type Options struct {
	Config   swiftcols.Config
	LogLevel slog.Level
}

// separatorFlags lists every spelling of a flag that takes a separator value.
var separatorFlags = map[string]bool{
	"-F":                       true,
	"--ifs":                    true,
	"--input-field-separator":  true,
	"--ofs":                    true,
	"--output-field-separator": true,
}

// Parse processes command-line arguments. It returns the parsed Options, a boolean reporting
// that help was printed and the program should exit cleanly, or a configuration error.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	if err := checkSeparatorValues(args); err != nil {
		return nil, false, err
	}

	var (
		ifs, ofs string
		align    bool
		logLevel string
		opts     *Options
	)

	cmd := &cobra.Command{
		Use:   "swiftcols [flags] COLUMN...",
		Short: "Select, reorder and align columns of delimited text",
		Long: `swiftcols reads lines from standard input and prints the requested columns.

A COLUMN is a 1-based position (3) or an inclusive range (2..5, 9..7).
Columns are printed in the order given; lines that lack a column simply omit it.
A single range may cover at most ` + strconv.Itoa(swiftcols.MaxRangeSpan) + ` columns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, columns []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			cfg, err := buildConfig(cmd, columns, ifs, ofs, align)
			if err != nil {
				return err
			}
			opts = &Options{Config: cfg, LogLevel: level}
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("swiftcols: %w", err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&ifs, "ifs", "F", swiftcols.DefaultPattern, "input field separator (regular expression)")
	flags.StringVar(&ifs, "input-field-separator", swiftcols.DefaultPattern, "alias for --ifs")
	flags.StringVar(&ofs, "ofs", swiftcols.DefaultOutputSeparator, "output field separator, also used for padding")
	flags.StringVar(&ofs, "output-field-separator", swiftcols.DefaultOutputSeparator, "alias for --ofs")
	flags.BoolVarP(&align, "align", "a", false, "align columns (buffers all input)")
	flags.StringVar(&logLevel, "log-level", "warn", "logging level: debug, info, warn or error")

	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, false, err
	}
	if opts == nil {
		slog.Debug("Help printed, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", opts.Config)
	return opts, false, nil
}

func buildConfig(cmd *cobra.Command, columns []string, ifs, ofs string, align bool) (swiftcols.Config, error) {
	cfg := swiftcols.DefaultConfig()
	cfg.OutputSeparator = ofs
	cfg.Align = align

	if cmd.Flags().Changed("ifs") || cmd.Flags().Changed("input-field-separator") {
		sep, err := swiftcols.NewSeparator(ifs)
		if err != nil {
			return swiftcols.Config{}, err
		}
		cfg.Separator = sep
	}

	indexes, err := swiftcols.ResolveArgs(columns)
	if err != nil {
		return swiftcols.Config{}, err
	}
	cfg.Columns = indexes
	return cfg, nil
}

// checkSeparatorValues reports a separator flag given as the final argument, where it has
// no value to consume.
func checkSeparatorValues(args []string) error {
	for i, arg := range args {
		if arg == "--" {
			return nil
		}
		if i != len(args)-1 {
			continue
		}
		if separatorFlags[arg] || isShortClusterEndingInF(arg) {
			return &swiftcols.MissingSeparatorValueError{Flag: arg}
		}
	}
	return nil
}

// isShortClusterEndingInF matches combined shorthand flags such as "-aF".
func isShortClusterEndingInF(arg string) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	return arg[len(arg)-1] == 'F' && strings.Trim(arg[1:len(arg)-1], "ah") == ""
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("swiftcols: invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
}
