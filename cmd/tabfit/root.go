package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/young1lin/tabfit/internal/config"
	"github.com/young1lin/tabfit/internal/termsize"
	"github.com/young1lin/tabfit/internal/update"
	"github.com/young1lin/tabfit/internal/version"
	"github.com/young1lin/tabfit/table"
)

// app holds the process dependencies so commands can run under test
type app struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	sizer      termsize.Sizer
	getenv     func(string) string
	runProgram func(tea.Model) error
	// checkUpdate returns a newer release, or nil when up to date
	checkUpdate func(context.Context) (*update.Release, error)
}

func defaultApp() *app {
	return &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		sizer:  termsize.Stdout(),
		getenv: os.Getenv,
		runProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
		checkUpdate: func(ctx context.Context) (*update.Release, error) {
			return update.NewChecker(version.Version).Check(ctx, true)
		},
	}
}

// flags are the layout options shared by every command
type flags struct {
	width        int
	configPath   string
	style        string
	padding      int
	align        string
	header       bool
	separateRows bool
	stretch      bool
	columns      []string
	format       string
	delimiter    string
	logLevel     string
}

func newRootCommand(a *app) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "tabfit",
		Short:         "Fit tabular data to the terminal",
		Long:          "Render CSV, JSON Lines and SQLite query results as bordered tables that fit the terminal width.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&f.width, "width", "w", 0, "total width in columns (default: terminal width)")
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default: .tabfit.yaml, then the user config)")
	pf.StringVarP(&f.style, "style", "s", "", fmt.Sprintf("border style %v", table.BorderStyles()))
	pf.IntVar(&f.padding, "padding", 1, "spaces on each side of a cell")
	pf.StringVar(&f.align, "align", "", "default alignment (left, center, right)")
	pf.BoolVar(&f.header, "header", true, "draw a rule under the header row")
	pf.BoolVar(&f.separateRows, "separate-rows", false, "draw a rule between every row")
	pf.BoolVar(&f.stretch, "stretch", false, "widen columns to fill the width")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCommand(a, f),
		newSQLCommand(a, f),
		newWatchCommand(a, f),
		newVersionCommand(a),
	)
	return root
}

// inputFlags registers the flags of commands that read files
func inputFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVar(&f.format, "format", "", "input format (csv, tsv, jsonl); guessed from the extension")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "field delimiter for csv input")
	cmd.Flags().StringSliceVar(&f.columns, "column", nil, "gjson path of a jsonl column (repeatable)")
}

func (a *app) logger(f *flags) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(f.logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", config.ErrInvalidOption, f.logLevel)
	}
	logger := logrus.New()
	logger.SetOutput(a.stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

// settings resolves the config file and applies flags set on the command line
func (a *app) settings(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load("")
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = f.width
	}
	if changed("style") {
		cfg.BorderStyle = f.style
	}
	if changed("padding") {
		cfg.Padding = f.padding
	}
	if changed("align") {
		cfg.DefaultAlign = f.align
	}
	if changed("header") {
		cfg.HeaderSeparator = f.header
	}
	if changed("separate-rows") {
		cfg.SeparateRows = f.separateRows
	}
	if changed("stretch") {
		cfg.Stretch = f.stretch
	}
	return cfg, cfg.Validate()
}

// layout turns the settings into table options and a rendering width. A
// width of 0 means the table is drawn at its natural size.
func (a *app) layout(cmd *cobra.Command, f *flags) (table.Options, []table.ColumnSpec, int, error) {
	cfg, err := a.settings(cmd, f)
	if err != nil {
		return table.Options{}, nil, 0, err
	}
	logger, err := a.logger(f)
	if err != nil {
		return table.Options{}, nil, 0, err
	}
	opts, specs, err := cfg.TableOptions()
	if err != nil {
		return table.Options{}, nil, 0, err
	}
	opts.Logger = logger

	width, err := termsize.Resolve(cfg.Width, a.sizer, a.getenv)
	if err != nil {
		logger.WithError(err).Debug("rendering at natural width")
		width = 0
	}
	if cfg.Path != "" {
		logger.WithField("path", cfg.Path).Debug("loaded config")
	}
	return opts, specs, width, nil
}

func (a *app) print(t *table.Table, width int) error {
	var (
		out *table.Output
		err error
	)
	if width > 0 {
		out, err = t.Render(width)
	} else {
		out, err = t.RenderNatural()
	}
	if err != nil {
		return err
	}
	if len(out.Lines) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(a.stdout, out.String())
	return err
}
