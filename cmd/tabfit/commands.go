package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/young1lin/tabfit/internal/config"
	"github.com/young1lin/tabfit/internal/source"
	"github.com/young1lin/tabfit/internal/version"
	"github.com/young1lin/tabfit/internal/watch"
	"github.com/young1lin/tabfit/table"
	"github.com/young1lin/tabfit/tui"
)

func newRenderCommand(a *app, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CSV, TSV or JSON Lines file",
		Long:  "Render a file as a table. Standard input is read when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, specs, width, err := a.layout(cmd, f)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			recs, err := a.read(path, f)
			if err != nil {
				return err
			}
			t, err := recs.Table(opts, specs...)
			if err != nil {
				return err
			}
			return a.print(t, width)
		},
	}
	inputFlags(cmd, f)
	return cmd
}

func newSQLCommand(a *app, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "sql <database> <query>",
		Short: "Render the result of a SQLite query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, specs, width, err := a.layout(cmd, f)
			if err != nil {
				return err
			}
			recs, err := source.QuerySQLite(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			t, err := recs.Table(opts, specs...)
			if err != nil {
				return err
			}
			return a.print(t, width)
		},
	}
}

func newWatchCommand(a *app, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Show a file as a table that refits on resize and reloads on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, specs, _, err := a.layout(cmd, f)
			if err != nil {
				return err
			}
			// Overflow shows in the status bar; log lines would garble the screen.
			quiet := logrus.New()
			quiet.SetOutput(io.Discard)
			opts.Logger = quiet

			path := args[0]
			load := func() (*table.Table, error) {
				recs, err := a.read(path, f)
				if err != nil {
					return nil, err
				}
				return recs.Table(opts, specs...)
			}
			// Fail before taking over the screen.
			if _, err := load(); err != nil {
				return err
			}

			w, err := watch.New(path, watch.DefaultDebounce)
			if err != nil {
				return fmt.Errorf("failed to start file watcher: %w", err)
			}
			defer w.Close()

			return a.runProgram(tui.NewModel(filepath.Base(path), load, w))
		},
	}
	inputFlags(cmd, f)
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of tabfit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, version.String())
			if !check {
				return nil
			}
			release, err := a.checkUpdate(cmd.Context())
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Fprintln(a.stdout, "tabfit is up to date")
				return nil
			}
			fmt.Fprintf(a.stdout, "Update available: %s → %s\nVisit %s to download\n",
				version.Version, release.Version(), release.HTMLURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")
	return cmd
}

// read loads records from path, or standard input when path is empty
func (a *app) read(path string, f *flags) (source.Records, error) {
	format, err := detectFormat(path, f.format)
	if err != nil {
		return source.Records{}, err
	}

	var r io.Reader = a.stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return source.Records{}, err
		}
		defer file.Close()
		r = file
	}

	switch format {
	case "jsonl":
		return source.ReadJSONL(r, f.columns)
	case "tsv":
		return source.ReadCSV(r, '\t')
	default:
		comma := ','
		if f.delimiter != "" {
			d, size := utf8.DecodeRuneInString(f.delimiter)
			if size != len(f.delimiter) || d == utf8.RuneError {
				return source.Records{}, fmt.Errorf("%w: delimiter %q", config.ErrInvalidOption, f.delimiter)
			}
			comma = d
		}
		return source.ReadCSV(r, comma)
	}
}

// detectFormat picks the input format from the flag or the file extension
func detectFormat(path, explicit string) (string, error) {
	switch strings.ToLower(explicit) {
	case "csv", "tsv", "jsonl":
		return strings.ToLower(explicit), nil
	case "":
	default:
		return "", fmt.Errorf("%w: format %q", config.ErrInvalidOption, explicit)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return "tsv", nil
	case ".jsonl", ".ndjson", ".json":
		return "jsonl", nil
	default:
		return "csv", nil
	}
}
