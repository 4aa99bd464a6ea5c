package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gonum.org/v1/plot"
)

const sessionPrompt = "geoplot> "

var errQuit = errors.New("quit")

// Session runs the interactive controls one command at a time. Every edit
// is applied to a copy of the state and re-rendered; only if both succeed
// does it replace the current state.
type Session struct {
	state  State
	source string
	plot   *plot.Plot

	size   figureSize
	inline bool
	out    io.Writer
}

type sessionCommand struct {
	usage string
	help  string
	run   func(s *Session, args []string) error
}

var sessionCommands map[string]sessionCommand

func init() {
	sessionCommands = map[string]sessionCommand{
		"load":        {"load PATH", "load a CSV table with 3 or 4 columns", (*Session).cmdLoad},
		"save":        {"save PATH", "save the figure, format from the extension (default " + DefaultImageExt + ")", (*Session).cmdSave},
		"start-color": {"start-color HEX", "set the color of mixed compositions", (*Session).cmdStartColor},
		"end-color":   {"end-color HEX", "set the color of dominated compositions", (*Session).cmdEndColor},
		"labels":      {"labels L1 L2 L3 [L4]", "rename the components", (*Session).cmdLabels},
		"title":       {"title TEXT...", "set the plot title", (*Session).cmdTitle},
		"blend":       {"blend MODE", "blend colors in one of " + strings.Join(BlendModes(), ", "), (*Session).cmdBlend},
		"show":        {"show", "show the figure inline", (*Session).cmdShow},
		"inspect":     {"inspect", "print purity and color per row", (*Session).cmdInspect},
		"status":      {"status", "print the current settings", (*Session).cmdStatus},
		"help":        {"help", "list commands", (*Session).cmdHelp},
		"quit":        {"quit", "leave the session", (*Session).cmdQuit},
	}
}

func NewSession(state State, size figureSize, inline bool, out io.Writer) *Session {
	return &Session{state: state, size: size, inline: inline, out: out}
}

func (s *Session) State() State {
	return s.state
}

// Exec runs a single command line. It returns errQuit when the session
// should end.
func (s *Session) Exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return errors.Wrap(err, "parse command")
	}
	if len(args) == 0 {
		return nil
	}
	name := args[0]
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := sessionCommands[name]
	if !ok {
		return errors.Errorf("unknown command %q, try help", args[0])
	}
	return cmd.run(s, args[1:])
}

// apply renders next and makes it the current state.
func (s *Session) apply(next State) error {
	if next.Loaded() {
		p, err := renderState(next)
		if err != nil {
			return err
		}
		s.plot = p
	}
	s.state = next
	if s.inline && s.plot != nil {
		return s.cmdShow(nil)
	}
	return nil
}

func renderState(st State) (*plot.Plot, error) {
	fig, err := st.Figure()
	if err != nil {
		return nil, err
	}
	return Render(fig)
}

func expectArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.Errorf("usage: %s", usage)
	}
	return nil
}

func (s *Session) cmdLoad(args []string) error {
	if err := expectArgs(args, 1, "load PATH"); err != nil {
		return err
	}
	next, err := s.state.Load(args[0])
	if err != nil {
		return err
	}
	if err := s.apply(next); err != nil {
		return err
	}
	s.source = args[0]
	verbosef("loaded %d rows with columns %v from %s", len(next.Table.Rows), next.Labels, args[0])
	return nil
}

func (s *Session) cmdSave(args []string) error {
	if err := expectArgs(args, 1, "save PATH"); err != nil {
		return err
	}
	if s.plot == nil {
		return ErrNotLoaded
	}
	path := withDefaultExt(args[0])
	if err := SaveFigure(s.plot, s.size, path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", path)
	return nil
}

func (s *Session) cmdStartColor(args []string) error {
	if err := expectArgs(args, 1, "start-color HEX"); err != nil {
		return err
	}
	next, err := s.state.WithStartColor(args[0])
	if err != nil {
		return err
	}
	return s.apply(next)
}

func (s *Session) cmdEndColor(args []string) error {
	if err := expectArgs(args, 1, "end-color HEX"); err != nil {
		return err
	}
	next, err := s.state.WithEndColor(args[0])
	if err != nil {
		return err
	}
	return s.apply(next)
}

func (s *Session) cmdLabels(args []string) error {
	next, err := s.state.WithLabels(args)
	if err != nil {
		return err
	}
	return s.apply(next)
}

func (s *Session) cmdTitle(args []string) error {
	next, err := s.state.WithTitle(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return s.apply(next)
}

func (s *Session) cmdBlend(args []string) error {
	if err := expectArgs(args, 1, "blend MODE"); err != nil {
		return err
	}
	next, err := s.state.WithBlend(args[0])
	if err != nil {
		return err
	}
	return s.apply(next)
}

func (s *Session) cmdShow(args []string) error {
	if s.plot == nil {
		return ErrNotLoaded
	}
	return renderImg(Rasterize(s.plot, s.size), s.state.Title, true, s.out)
}

func (s *Session) cmdInspect(args []string) error {
	fig, err := s.state.Figure()
	if err != nil {
		return err
	}
	return writeInspection(s.out, fig)
}

func (s *Session) cmdStatus(args []string) error {
	st := s.state
	if st.Loaded() {
		fmt.Fprintf(s.out, "table:  %s (%d rows, %d components)\n", s.source, len(st.Table.Rows), st.Table.Components())
		fmt.Fprintf(s.out, "labels: %s\n", strings.Join(st.Labels, ", "))
	} else {
		fmt.Fprintf(s.out, "table:  none\n")
	}
	fmt.Fprintf(s.out, "title:  %s\n", st.Title)
	fmt.Fprintf(s.out, "colors: %s -> %s (%s)\n", st.Start.Hex(), st.End.Hex(), st.Blend)
	return nil
}

func (s *Session) cmdHelp(args []string) error {
	names := make([]string, 0, len(sessionCommands))
	for name := range sessionCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := sessionCommands[name]
		fmt.Fprintf(s.out, "  %-22s %s\n", cmd.usage, cmd.help)
	}
	return nil
}

func (s *Session) cmdQuit(args []string) error {
	return errQuit
}

// Run reads commands from in until it is exhausted or a quit command.
// Command errors are reported and the session carries on.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if s.exec(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Session) exec(line string) (quit bool) {
	err := s.Exec(line)
	if err == errQuit {
		return true
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

// RunTerminal reads commands from the terminal in with a line editor,
// echoing to out.
func (s *Session) RunTerminal(in, out *os.File) error {
	fd := int(in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "raw terminal")
	}
	defer term.Restore(fd, old)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, sessionPrompt)
	if w, h, err := term.GetSize(fd); err == nil {
		t.SetSize(w, h)
	}
	s.out = t
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.exec(line) {
			return nil
		}
	}
}
