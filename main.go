package main

import (
	"log"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

var (
	optVerbose  bool
	optInline   bool
	optSize     = defaultFigureSize
	optStart    string
	optEnd      string
	optBlend    string
	optTitle    string
	optLabels   []string
	optOutput   string
	optFile     string
	optSession  string
	optNoInline bool
)

func verbosef(format string, args ...interface{}) {
	if optVerbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("geoplot: ")

	app := kingpin.New("geoplot", "Ternary and quaternary composition plots colored by purity.")
	app.Flag("verbose", "log progress to stderr").Short('v').BoolVar(&optVerbose)
	app.Flag("start-color", "color of perfectly mixed compositions").Default("#0000FF").StringVar(&optStart)
	app.Flag("end-color", "color of compositions dominated by one component").Default("#FF0000").StringVar(&optEnd)
	app.Flag("blend", "color space the ramp is blended in").Default(string(BlendRGB)).EnumVar(&optBlend, BlendModes()...)
	app.Flag("title", "plot title").Default(DefaultTitle).StringVar(&optTitle)
	app.Flag("size", "figure size in pixels").Default(defaultFigureSize.String()).SetValue(&optSize)

	plotCmd := app.Command("plot", "Render a table to an image.")
	plotCmd.Arg("file", "CSV table with 3 or 4 columns").Required().ExistingFileVar(&optFile)
	plotCmd.Flag("label", "component label, once per column").Short('l').StringsVar(&optLabels)
	plotCmd.Flag("output", "image file, format from the extension; PNG on stdout if omitted").Short('o').StringVar(&optOutput)
	plotCmd.Flag("inline", "show the image inline in iTerm even when stdout is not a terminal").BoolVar(&optInline)

	inspectCmd := app.Command("inspect", "Print the purity and color of each row.")
	inspectCmd.Arg("file", "CSV table with 3 or 4 columns").Required().ExistingFileVar(&optFile)
	inspectCmd.Flag("label", "component label, once per column").Short('l').StringsVar(&optLabels)

	sessionCmd := app.Command("session", "Edit and render a figure interactively.")
	sessionCmd.Arg("file", "CSV table to start with").ExistingFileVar(&optSession)
	sessionCmd.Flag("no-inline", "do not preview figures inline after each edit").BoolVar(&optNoInline)

	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case plotCmd.FullCommand():
		err = runPlot()
	case inspectCmd.FullCommand():
		err = runInspect()
	case sessionCmd.FullCommand():
		err = runSession()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// initialState applies the shared flags on top of the defaults.
func initialState() (State, error) {
	st, err := NewState().WithStartColor(optStart)
	if err != nil {
		return st, err
	}
	if st, err = st.WithEndColor(optEnd); err != nil {
		return st, err
	}
	if st, err = st.WithBlend(optBlend); err != nil {
		return st, err
	}
	return st.WithTitle(optTitle)
}

func loadState(path string) (State, error) {
	st, err := initialState()
	if err != nil {
		return st, err
	}
	if st, err = st.Load(path); err != nil {
		return st, err
	}
	verbosef("loaded %d rows with columns %v from %s", len(st.Table.Rows), st.Labels, path)
	if len(optLabels) > 0 {
		return st.WithLabels(optLabels)
	}
	return st, nil
}

func runPlot() error {
	st, err := loadState(optFile)
	if err != nil {
		return err
	}
	p, err := renderState(st)
	if err != nil {
		return err
	}
	if optOutput != "" {
		if err := SaveFigure(p, optSize, optOutput); err != nil {
			return err
		}
		verbosef("wrote %s", optOutput)
		return nil
	}
	inline := optInline || IsTerminal(os.Stdout)
	return renderImg(Rasterize(p, optSize), st.Title, inline, os.Stdout)
}

func runInspect() error {
	st, err := loadState(optFile)
	if err != nil {
		return err
	}
	fig, err := st.Figure()
	if err != nil {
		return err
	}
	return writeInspection(os.Stdout, fig)
}

func runSession() error {
	st, err := initialState()
	if err != nil {
		return err
	}
	interactive := IsTerminal(os.Stdin)
	inline := !optNoInline && IsTerminal(os.Stdout)
	s := NewSession(st, optSize, inline, os.Stdout)
	if optSession != "" {
		if err := s.cmdLoad([]string{optSession}); err != nil {
			return err
		}
	}
	if interactive {
		return s.RunTerminal(os.Stdin, os.Stdout)
	}
	return s.Run(os.Stdin)
}
