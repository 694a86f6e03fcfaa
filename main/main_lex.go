package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"github.com/nof-sh/lexscan/lexer"
	"github.com/nof-sh/lexscan/render"
)

type options struct {
	format  string
	verbose bool
	color   bool
	input   string
	output  string
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("lexscan", flag.ContinueOnError)
	fs.StringVar(&opts.format, "format", "text", "output format: text or bson")
	fs.BoolVar(&opts.verbose, "v", false, "log every token to stderr")
	fs.BoolVar(&opts.color, "color", false, "colour the diagnostic when writing to a terminal")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "USAGE: lexscan [flags] [input-file] [output-file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 2 {
		fs.Usage()
		return nil, fmt.Errorf("too many arguments")
	}
	opts.input = fs.Arg(0)
	opts.output = fs.Arg(1)

	if opts.format != "text" && opts.format != "bson" {
		fs.Usage()
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// diagnose prints the single fatal diagnostic line.
func diagnose(opts *options, msg string) {
	c := color.New()
	c.SetOutput(os.Stdout)
	if !opts.color {
		c.Disable()
	}
	fmt.Fprintln(os.Stdout, c.Red(msg))
}

func run(opts *options, log logrus.FieldLogger) int {
	var in io.Reader = os.Stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			log.WithError(err).Debug("open input")
			diagnose(opts, fmt.Sprintf("(0,0) error: Can't open %s", opts.input))
			return 1
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			log.WithError(err).Debug("open output")
			diagnose(opts, fmt.Sprintf("(0,0) error: Can't open %s", opts.output))
			return 1
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	var r render.Renderer = render.NewText(bw)
	if opts.format == "bson" {
		r = render.NewBSON(bw)
	}

	err := render.Run(lexer.NewScanner(in), r, log)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		diagnose(opts, err.Error())
		return 1
	}
	return 0
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(run(opts, newLogger(opts.verbose)))
}
