// Command cfmt formats and inspects printf templates from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/bjaus/cfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	// Global flags
	configPath string
	verbose    bool
	bufferSize int
	unknown    string

	// inspect flags
	output string
	border string
	title  string
	indent string

	// print flags
	escapes bool

	cfg    settings
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "cfmt",
		Short: "Format and inspect C printf templates",
		Long: `cfmt renders C printf templates with the directives
%c %s %S %r %R %d %i %u %o %x %X %b %p and %%.

Arguments are parsed as the template requires: integers accept 0x, 0o and 0b
prefixes, pointers accept nil.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	printCmd := &cobra.Command{
		Use:   "print TEMPLATE [ARG...]",
		Short: "Format a template and write the result to stdout",
		Example: `  cfmt print '%-8s|%05d|%#x\n' id 42 255
  cfmt print '%S\n' "$(printf 'a\tb')"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runPrint,
	}
	// Arguments such as -5 are values, not flags.
	printCmd.Flags().SetInterspersed(false)
	printCmd.Flags().BoolVar(&a.escapes, "escapes", true, "Interpret backslash escapes in the template")

	inspectCmd := &cobra.Command{
		Use:   "inspect TEMPLATE",
		Short: "List the directives of a template",
		Example: `  cfmt inspect '%-*.*s|%lx'
  cfmt inspect -o json '%05d'
  cfmt inspect -o 'go-template={{.Offset}} {{.Verb}}' '%d %s'`,
		Args: cobra.ExactArgs(1),
		RunE: a.runInspect,
	}
	inspectCmd.Flags().StringVarP(&a.output, "output", "o", "", "Output format: table, markdown, csv, tsv, json, jsonl, yaml, plain or go-template=...")
	inspectCmd.Flags().StringVar(&a.border, "border", "", "Table border: rounded, none, ascii, heavy or double")
	inspectCmd.Flags().StringVar(&a.title, "title", "", "Table title")
	inspectCmd.Flags().StringVar(&a.indent, "indent", "", "Indent for json and yaml output")
	inspectCmd.Flags().BoolVar(&a.escapes, "escapes", true, "Interpret backslash escapes in the template")

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVar(&a.bufferSize, "buffer-size", cfmt.DefaultBufferSize, "Output buffer size in bytes")
	rootCmd.PersistentFlags().StringVar(&a.unknown, "unknown", "", "Unknown conversions: verb or directive")

	rootCmd.AddCommand(printCmd, inspectCmd)
	return rootCmd
}

// setup builds the logger and merges the config file with flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("buffer-size") {
		cfg.BufferSize = a.bufferSize
	}
	if flags.Changed("unknown") {
		cfg.Unknown = a.unknown
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("border") {
		cfg.Border = a.border
	}
	if flags.Changed("escapes") {
		cfg.Escapes = a.escapes
	}
	a.cfg, err = cfg.settings()
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("buffer_size", a.cfg.bufferSize),
		zap.Stringer("unknown", a.cfg.unknown),
		zap.Stringer("output", a.cfg.output),
	)
	return nil
}

func (a *app) template(s string) (string, error) {
	if !a.cfg.escapes {
		return s, nil
	}
	return unescape(s)
}

func (a *app) runPrint(cmd *cobra.Command, args []string) error {
	tmpl, err := a.template(args[0])
	if err != nil {
		return err
	}
	p := cfmt.New(cmd.OutOrStdout(),
		cfmt.WithBufferSize(a.cfg.bufferSize),
		cfmt.WithUnknownPolicy(a.cfg.unknown),
		cfmt.WithLogger(a.logger),
	)
	vals := cfmt.Strings(args[1:]...)
	n, err := p.Print(tmpl, vals)
	if err != nil {
		return err
	}
	a.logger.Debug("template printed", zap.Int("bytes", n), zap.Int("unused_args", vals.Remaining()))
	if err := vals.Err(); err != nil {
		return fmt.Errorf("bad arguments: %w", err)
	}
	return nil
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	tmpl, err := a.template(args[0])
	if err != nil {
		return err
	}
	return cfmt.Inspect(cmd.OutOrStdout(), a.cfg.output, tmpl,
		cfmt.WithBorder(a.cfg.border),
		cfmt.WithTitle(a.title),
		cfmt.WithIndent(a.indent),
	)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
