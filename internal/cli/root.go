// Package cli implements the cobra commands of the xshape binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deedles.dev/xshape/format"
)

// app holds the state shared by the commands of a single command tree.
type app struct {
	cfg     Config
	logger  *zap.Logger
	printer printer

	verbose bool
	format  string
	output  string
}

// NewRootCommand returns the root xshape command with every
// subcommand registered.
func NewRootCommand() *cobra.Command {
	a := app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "xshape",
		Short: "Rectangle and line algebra",
		Long: `xshape evaluates operations on integer-dimensioned rectangles and lines.

Shapes are given either as WxH, such as 5x3, or in the literal notation,
such as "(o- - -o)". An unclosed line such as "o- -" may be given as
well, but every operation on one fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.format, "format", "", "Notation for shapes: literal, box (env: XSHAPE_FORMAT)")
	flags.StringVarP(&a.output, "output", "o", "", "Output format: text, yaml (env: XSHAPE_OUTPUT)")

	root.AddCommand(a.commands()...)

	return root
}

// setup loads configuration, applies flag overrides, and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	f, _ := format.ByName(cfg.Format)
	a.printer = printer{format: f, output: cfg.Output}

	a.logger.Debug("configured",
		zap.String("format", cfg.Format),
		zap.String("output", cfg.Output))
	return nil
}

// Execute runs root and exits with a non-zero status if it fails.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
