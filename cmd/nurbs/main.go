// Command nurbs samples a rational B-spline curve described by a YAML file
// and prints one "x y" pair per line.
//
// A curve file looks like this:
//
//	degree: 2
//	count: 4
//	knots: 0,0,0,1,2,2,2
//	points:
//	  - {index: 1, x: 300, y: 200, weight: 2}
//	steps: 100
//
// If the knots are malformed or have the wrong length, a message is printed
// to standard error and the default knots 0, 1, … are used instead.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sgostarter/i/l"

	"honnef.co/go/nurbs"
)

const defaultSteps = 100

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nurbs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		config  = fs.String("config", "curve.yaml", "curve definition file")
		steps   = fs.Int("steps", 0, "number of samples; overrides the file (default 100)")
		verbose = fs.Bool("v", false, "log to the console")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var logger l.Wrapper
	if *verbose {
		logger = l.NewConsoleLoggerWrapper()
	}

	pl, err := sampleConfig(cfg, *steps, logger, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	w := bufio.NewWriter(stdout)
	for _, pt := range pl {
		x, y := pt.Splat()
		fmt.Fprintf(w, "%g %g\n", x, y)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// sampleConfig builds the curve described by cfg and samples it. steps
// overrides cfg.Steps if positive.
func sampleConfig(cfg *Config, steps int, logger l.Wrapper, stderr io.Writer) (nurbs.Polyline, error) {
	scene := nurbs.NewScene(logger)
	if err := scene.Start(cfg.Degree, cfg.Count); err != nil {
		return nil, err
	}

	if cfg.Knots != "" {
		if knots, err := scene.UpdateKnots(cfg.Knots); err != nil {
			fmt.Fprintf(stderr, "%s (%v), using %v\n", knotsMessage(err), err, knots)
		}
	}

	for _, p := range cfg.Points {
		cp, err := scene.Store().Get(p.Index)
		if err != nil {
			return nil, err
		}
		w := cp.Weight
		if p.Weight != nil {
			w = *p.Weight
		}
		if err := scene.SetControlPoint(p.Index, p.X, p.Y, w); err != nil {
			return nil, err
		}
	}

	if steps <= 0 {
		steps = cfg.Steps
	}
	if steps <= 0 {
		steps = defaultSteps
	}
	return scene.Sample(steps)
}

func knotsMessage(err error) string {
	if errors.Is(err, nurbs.ErrLengthMismatch) {
		return "invalid number of knots"
	}
	return "invalid knots"
}
