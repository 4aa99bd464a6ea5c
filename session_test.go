package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(NewState(), figureSize{160, 120}, false, &out), &out
}

func TestSessionEditsBeforeLoad(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Exec("title Ultramafic rocks"); err != nil {
		t.Fatal(err)
	}
	if err := s.Exec("start-color #00ff00"); err != nil {
		t.Fatal(err)
	}
	if err := s.Exec("labels A B C"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("labels before load: %v", err)
	}
	if err := s.Exec("save out.png"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("save before load: %v", err)
	}
	st := s.State()
	if st.Title != "Ultramafic rocks" || st.Start.Hex() != "#00ff00" {
		t.Errorf("state = %+v", st)
	}
}

func TestSessionScript(t *testing.T) {
	dir := t.TempDir()
	good := writeTable(t, "good.csv", "SiO2,Al2O3,FeO\n60,30,10\n20,20,60\n")
	bad := writeTable(t, "bad.csv", "A,B,C,D,E\n1,2,3,4,5\n")
	out := filepath.Join(dir, "figure")

	script := strings.Join([]string{
		"load " + good,
		"load " + bad,
		"labels Si Al ''",
		"labels 'Si O2' Al Fe",
		"title '   '",
		"title Felsic  to mafic",
		"blend cmyk",
		"blend lab",
		"bogus",
		"save " + out,
		"status",
		"quit",
		"title never applied",
	}, "\n")

	s, buf := newTestSession()
	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if !st.Loaded() || st.Table.Components() != 3 {
		t.Fatalf("table = %+v, want the 3 column table", st.Table)
	}
	if got := strings.Join(st.Labels, "|"); got != "Si O2|Al|Fe" {
		t.Errorf("labels = %q", got)
	}
	if st.Title != "Felsic to mafic" {
		t.Errorf("title = %q", st.Title)
	}
	if st.Blend != BlendLab {
		t.Errorf("blend = %q", st.Blend)
	}
	if _, err := os.Stat(out + DefaultImageExt); err != nil {
		t.Errorf("figure not saved: %v", err)
	}

	text := buf.String()
	if n := strings.Count(text, "error: "); n != 5 {
		t.Errorf("got %d errors, want 5:\n%s", n, text)
	}
	for _, want := range []string{"expected 3 or 4 columns", "all labels must be provided", "plot title cannot be empty", "unknown command", "saved ", "table:  " + good} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q:\n%s", want, text)
		}
	}
}

func TestSessionInlinePreview(t *testing.T) {
	path := writeTable(t, "q.csv", "A,B,C,D\n25,25,25,25\n")
	var out bytes.Buffer
	s := NewSession(NewState(), figureSize{120, 90}, true, &out)
	if err := s.Exec("load " + path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033]1337;File=inline=1;") {
		t.Error("load did not preview the figure inline")
	}
	out.Reset()
	if err := s.Exec("end-color 00ff00"); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Error("color edit did not re-render")
	}
	out.Reset()
	if err := s.Exec("inspect"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "#0000ff") {
		t.Errorf("inspect output %q lacks the start color", out.String())
	}
}

func TestSessionHelp(t *testing.T) {
	s, buf := newTestSession()
	if err := s.Exec("help"); err != nil {
		t.Fatal(err)
	}
	for name := range sessionCommands {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("help lacks %q", name)
		}
	}
	if err := s.Exec("exit"); err != errQuit {
		t.Errorf("exit = %v, want errQuit", err)
	}
	if err := s.Exec("load 'unterminated"); err == nil {
		t.Error("unbalanced quote accepted")
	}
}
