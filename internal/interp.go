package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Print(a ...interface{}) (n int, err error)
}

// IReader supplies INPUT with one line at a time
type IReader interface {
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines from r, without their line terminator
func NewLineReader(r io.Reader) IReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Options configures a single run
type Options struct {
	Printer IPrinter
	Reader  IReader
	Logger  *logrus.Logger
	// MaxSteps aborts the run after that many statements; zero means no limit.
	MaxSteps int
}

type writerPrinter struct {
	out io.Writer
}

func (w writerPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w.out, a...)
}

func (w writerPrinter) Print(a ...interface{}) (n int, err error) {
	return fmt.Fprint(w.out, a...)
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func parseSource(source string, logger *logrus.Logger) (*interpreterState, error) {
	state := &interpreterState{source: source}
	program, err := newParser(newLexer(source)).parse()
	if err != nil {
		return nil, err
	}
	state.program = program
	logger.WithFields(logrus.Fields{
		"statements": program.len(),
		"labels":     program.labels.len(),
	}).Debug("parsed")
	return state, nil
}

// RunSource parses and runs source on a fresh environment. The first
// checked failure stops the run and is returned as an *Error.
func RunSource(source string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if opts.Printer == nil {
		opts.Printer = writerPrinter{out: io.Discard}
	}
	if opts.Reader == nil {
		opts.Reader = NewLineReader(strings.NewReader(""))
	}

	state, err := parseSource(source, logger)
	if err != nil {
		return err
	}

	exec := &exec{
		program:  state.program,
		env:      newEnv(state.program.labels),
		printer:  opts.Printer,
		reader:   opts.Reader,
		logger:   logger,
		maxSteps: opts.MaxSteps,
	}
	err = exec.interpret()
	logger.WithFields(logrus.Fields{
		"steps": exec.steps,
		"ok":    err == nil,
	}).Debug("finished")
	return err
}

// RunSourceWithPrinter runs source with no input available
func RunSourceWithPrinter(source string, p IPrinter) error {
	return RunSource(source, Options{Printer: p})
}

// Check parses source without running it and also reports every GOTO or
// GOSUB naming a label that is never declared.
func Check(source string) []error {
	state, err := parseSource(source, discardLogger())
	if err != nil {
		return []error{err}
	}
	var errs []error
	for _, e := range state.program.unresolved() {
		errs = append(errs, e)
	}
	return errs
}

// Tokens lists every token of source, one per line
func Tokens(source string) (string, error) {
	tokens, err := newLexer(source).scan()
	var out strings.Builder
	for _, tk := range tokens {
		fmt.Fprintln(&out, tk)
	}
	return out.String(), err
}

// Listing renders the flattened program of source
func Listing(source string) (string, error) {
	state, err := parseSource(source, discardLogger())
	if err != nil {
		return "", err
	}
	return state.program.listing(), nil
}

// Labels lists the labels declared in source with their positions
func Labels(source string) (string, error) {
	state, err := parseSource(source, discardLogger())
	if err != nil {
		return "", err
	}
	return state.program.labelListing(), nil
}
