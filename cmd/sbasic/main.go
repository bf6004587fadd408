package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/labstack/gommon/color"
	"sbasic/internal"
)

const usage = `Usage: sbasic [flags] [run|check|tokens|ast|labels] /path/to/source.bas

Flags:
`

type stdPrinter struct {
	out io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Print(a ...interface{}) (n int, err error) {
	return fmt.Fprint(s.out, a...)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sbasic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to a YAML config file (default "+internal.DefaultConfigFile+" if present)")
	logLevel := fs.String("log-level", "", "log level: panic, fatal, error, warn, info, debug or trace")
	trace := fs.Bool("trace", false, "log every executed statement")
	noColor := fs.Bool("no-color", false, "disable coloured diagnostics")
	maxSteps := fs.Int("max-steps", 0, "abort after this many statements, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	colors := color.New()
	colors.SetOutput(stderr)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, colors.Red(err.Error()))
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "trace":
			cfg.Trace = *trace
		case "no-color":
			enabled := !*noColor
			cfg.Color = &enabled
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		}
	})
	if cfg.Color != nil {
		if *cfg.Color {
			colors.Enable()
		} else {
			colors.Disable()
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, colors.Red(err.Error()))
		return 1
	}

	command, path := "run", ""
	switch fs.NArg() {
	case 1:
		path = fs.Arg(0)
	case 2:
		command, path = fs.Arg(0), fs.Arg(1)
	default:
		fs.Usage()
		return 2
	}

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(stderr, colors.Red(err.Error()))
		return 1
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, colors.Red(err.Error()))
		return 1
	}
	logger.WithField("file", path).Debug("loaded source")

	var errs []error
	switch command {
	case "run":
		err = internal.RunSource(source, internal.Options{
			Printer:  stdPrinter{out: stdout},
			Reader:   internal.NewLineReader(stdin),
			Logger:   logger,
			MaxSteps: cfg.MaxSteps,
		})
	case "check":
		errs = internal.Check(source)
	case "tokens":
		err = printListing(stdout, internal.Tokens, source)
	case "ast":
		err = printListing(stdout, internal.Listing, source)
	case "labels":
		err = printListing(stdout, internal.Labels, source)
	default:
		fmt.Fprintln(stderr, colors.Yellow("unknown command "+command))
		fs.Usage()
		return 2
	}
	if err != nil {
		errs = append(errs, err)
	}
	for _, e := range errs {
		fmt.Fprintln(stderr, colors.Red(e.Error()))
	}
	if len(errs) > 0 {
		return 1
	}
	return 0
}

func printListing(out io.Writer, list func(string) (string, error), source string) error {
	listing, err := list(source)
	fmt.Fprint(out, listing)
	return err
}

func loadConfig(path string) (*internal.Config, error) {
	if path != "" {
		return internal.LoadConfig(path)
	}
	if _, err := os.Stat(internal.DefaultConfigFile); err == nil {
		return internal.LoadConfig(internal.DefaultConfigFile)
	}
	return internal.DefaultConfig(), nil
}

func readSource(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
