package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/young1lin/tabfit/internal/config"
	"github.com/young1lin/tabfit/internal/update"
	"github.com/young1lin/tabfit/tui"
)

type fixedSizer struct {
	width int
}

func (s fixedSizer) IsTerminal() bool    { return s.width > 0 }
func (s fixedSizer) Width() (int, error) { return s.width, nil }

type harness struct {
	app    *app
	stdout bytes.Buffer
	stderr bytes.Buffer
	model  tea.Model
	config string
}

func newHarness(t *testing.T, termWidth int, stdin string) *harness {
	t.Helper()
	h := &harness{config: filepath.Join(t.TempDir(), "tabfit.yaml")}
	if err := os.WriteFile(h.config, []byte("border_style: simple\n"), 0644); err != nil {
		t.Fatal(err)
	}
	h.app = &app{
		stdin:  strings.NewReader(stdin),
		stdout: &h.stdout,
		stderr: &h.stderr,
		sizer:  fixedSizer{width: termWidth},
		getenv: func(string) string { return "" },
		runProgram: func(m tea.Model) error {
			h.model = m
			return nil
		},
		checkUpdate: func(context.Context) (*update.Release, error) {
			return nil, nil
		},
	}
	return h
}

func (h *harness) run(args ...string) error {
	root := newRootCommand(h.app)
	root.SetArgs(append(args, "--config", h.config))
	return root.Execute()
}

func (h *harness) lines() []string {
	return strings.Split(strings.TrimRight(h.stdout.String(), "\n"), "\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCSVFile(t *testing.T) {
	h := newHarness(t, 0, "")
	path := writeFile(t, "people.csv", "name,age\nada,36\n")

	if err := h.run("render", path, "--width", "20"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	want := []string{
		"+------+-----+",
		"| name | age |",
		"+------+-----+",
		"| ada  | 36  |",
		"+------+-----+",
	}
	if diff := cmp.Diff(want, h.lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFitsTerminal(t *testing.T) {
	h := newHarness(t, 24, "")
	path := writeFile(t, "notes.csv", "id,note\n1,the quick brown fox jumps over the lazy dog\n")

	if err := h.run("render", path); err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, line := range h.lines() {
		if len([]rune(line)) != 24 {
			t.Errorf("line %q is %d wide, want 24", line, len([]rune(line)))
		}
	}
	if len(h.lines()) <= 5 {
		t.Errorf("expected the note to wrap, got %d lines", len(h.lines()))
	}
}

func TestRenderStdinJSONL(t *testing.T) {
	h := newHarness(t, 0, `{"user": {"name": "ada"}, "n": 1}`+"\n"+`{"user": {"name": "bo"}, "n": 22}`+"\n")

	err := h.run("render", "--format", "jsonl", "--column", "user.name", "--column", "n",
		"--align", "right", "--header=false")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	want := []string{
		"+-----------+----+",
		"| user.name |  n |",
		"|       ada |  1 |",
		"|        bo | 22 |",
		"+-----------+----+",
	}
	if diff := cmp.Diff(want, h.lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTSVByExtension(t *testing.T) {
	h := newHarness(t, 0, "")
	path := writeFile(t, "data.tsv", "a\tb\n1\t2\n")

	if err := h.run("render", path, "--style", "empty", "--padding", "0"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(h.stdout.String(), "1") || strings.Contains(h.stdout.String(), "\t") {
		t.Errorf("unexpected output %q", h.stdout.String())
	}
}

func TestRenderErrors(t *testing.T) {
	path := writeFile(t, "x.csv", "a\n1\n")
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown style", []string{"render", path, "--style", "sparkly"}, config.ErrInvalidOption},
		{"unknown format", []string{"render", path, "--format", "xml"}, config.ErrInvalidOption},
		{"bad delimiter", []string{"render", path, "--delimiter", ";;"}, config.ErrInvalidOption},
		{"bad log level", []string{"render", path, "--log-level", "loud"}, config.ErrInvalidOption},
		{"negative padding", []string{"render", path, "--padding", "-1"}, config.ErrInvalidOption},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "none.csv")}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 0, "")
			if err := h.run(tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderOverflowWarns(t *testing.T) {
	h := newHarness(t, 0, "")
	path := writeFile(t, "w.csv", "word\nsupercalifragilistic\n")

	if err := h.run("render", path, "--width", "10"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(h.stderr.String(), "overflow") {
		t.Errorf("expected an overflow warning, got %q", h.stderr.String())
	}

	h = newHarness(t, 0, "")
	if err := h.run("render", path, "--width", "10", "--log-level", "error"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if h.stderr.Len() != 0 {
		t.Errorf("expected no warning at error level, got %q", h.stderr.String())
	}
}

func TestSQLCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		"CREATE TABLE langs (name TEXT, year INTEGER)",
		"INSERT INTO langs VALUES ('go', 2009), ('c', 1972)",
	} {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	db.Close()

	h := newHarness(t, 0, "")
	if err := h.run("sql", path, "SELECT name, year FROM langs ORDER BY year"); err != nil {
		t.Fatalf("sql error = %v", err)
	}
	want := []string{
		"+------+------+",
		"| name | year |",
		"+------+------+",
		"| c    | 1972 |",
		"| go   | 2009 |",
		"+------+------+",
	}
	if diff := cmp.Diff(want, h.lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWatchCommand(t *testing.T) {
	h := newHarness(t, 80, "")
	path := writeFile(t, "live.csv", "a,b\n1,2\n")

	if err := h.run("watch", path); err != nil {
		t.Fatalf("watch error = %v", err)
	}
	m, ok := h.model.(tui.Model)
	if !ok {
		t.Fatalf("program model = %T, want tui.Model", h.model)
	}
	if m.Init() == nil {
		t.Error("model should start loading")
	}
}

func TestWatchCommandBadFile(t *testing.T) {
	h := newHarness(t, 80, "")
	if err := h.run("watch", filepath.Join(t.TempDir(), "none.csv")); err == nil {
		t.Error("watch expected an error for a missing file")
	}
	if h.model != nil {
		t.Error("program should not start")
	}
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t, 0, "")
	if err := h.run("version"); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(h.stdout.String(), "tabfit dev") {
		t.Errorf("version output = %q", h.stdout.String())
	}
}

func TestVersionCheck(t *testing.T) {
	h := newHarness(t, 0, "")
	if err := h.run("version", "--check"); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(h.stdout.String(), "up to date") {
		t.Errorf("version output = %q", h.stdout.String())
	}

	h = newHarness(t, 0, "")
	h.app.checkUpdate = func(context.Context) (*update.Release, error) {
		return &update.Release{TagName: "v2.0.0", HTMLURL: "https://example.com/r"}, nil
	}
	if err := h.run("version", "--check"); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(h.stdout.String(), "Update available: dev → 2.0.0") {
		t.Errorf("version output = %q", h.stdout.String())
	}

	h = newHarness(t, 0, "")
	h.app.checkUpdate = func(context.Context) (*update.Release, error) {
		return nil, errors.New("offline")
	}
	if err := h.run("version", "--check"); err == nil {
		t.Error("version --check expected an error")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path, explicit, want string
	}{
		{"a.csv", "", "csv"},
		{"a.TSV", "", "tsv"},
		{"a.tab", "", "tsv"},
		{"a.ndjson", "", "jsonl"},
		{"a.json", "", "jsonl"},
		{"", "", "csv"},
		{"a.csv", "JSONL", "jsonl"},
	}
	for _, tt := range tests {
		got, err := detectFormat(tt.path, tt.explicit)
		if err != nil || got != tt.want {
			t.Errorf("detectFormat(%q, %q) = %q, %v, want %q", tt.path, tt.explicit, got, err, tt.want)
		}
	}
}

func TestLogAndExit(t *testing.T) {
	old := exitFunc
	defer func() { exitFunc = old }()

	code := -1
	exitFunc = func(c int) { code = c }

	logAndExit(nil)
	if code != -1 {
		t.Errorf("logAndExit(nil) exited with %d", code)
	}
	logAndExit(errors.New("boom"))
	if code != 1 {
		t.Errorf("logAndExit(err) exited with %d, want 1", code)
	}
}
