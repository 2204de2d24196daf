// Command bezsample replays a path authoring script and prints the result.
//
// Usage:
//
//	bezsample sample [-svg] [-precision n] [-spacing f] [-resolution f] [-v] script.toml
//	bezsample ease [-mode name] [-min f] [-max f] [-steps n] [-from f] [-to f] [-strict] [-v]
//
// The sample subcommand builds the path described by the script (TOML or
// YAML) and prints evenly spaced points along it, one "x y" pair per line, or
// the path's SVG path data with -svg, rounded to at most -precision decimals.
// The ease subcommand prints a table of an easing function mapped onto
// [min, max], for steps+1 values of t running from -from to -to.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bezier2d/bezier2d"
	"github.com/bezier2d/bezier2d/ease"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bezsample:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing subcommand (sample or ease)")
	}
	var err error
	switch args[0] {
	case "sample":
		err = runSample(args[1:], stdout, stderr)
	case "ease":
		err = runEase(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func setupLogging(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	bezier2d.SetLogger(l)
	return l
}

func runSample(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	svg := fs.Bool("svg", false, "print SVG path data instead of samples")
	spacing := fs.Float64("spacing", 0, "sample spacing, overrides the script")
	resolution := fs.Float64("resolution", 0, "sampling resolution, overrides the script")
	precision := fs.Int("precision", 0, "maximum number of decimals in SVG output")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("sample: expected exactly one script file")
	}
	log := setupLogging(stderr, *verbose)

	script, err := LoadScript(fs.Arg(0))
	if err != nil {
		return err
	}
	path, err := script.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", fs.Arg(0), err)
	}
	log.Debug("built path",
		"points", path.PointCount(),
		"segments", path.SegmentCount(),
		"closed", path.IsClosed(),
		"auto_set", path.AutoSetControlPoints())

	if *svg {
		_, err := fmt.Fprintln(stdout, path.SVG(bezier2d.SVGOptions{MaxPrecision: *precision}))
		return err
	}

	sp := script.Spacing
	if *spacing > 0 {
		sp = *spacing
	}
	res := script.Resolution
	if *resolution > 0 {
		res = *resolution
	}
	if res == 0 {
		res = 1
	}
	pts, err := path.EvenlySpacedPoints(sp, res)
	if err != nil {
		return err
	}
	for _, pt := range pts {
		if _, err := fmt.Fprintf(stdout, "%g %g\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	return nil
}

func runEase(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ease", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modeName := fs.String("mode", "smoothstep3", "easing function")
	lo := fs.Float64("min", 0, "value at t = 0")
	hi := fs.Float64("max", 1, "value at t = 1")
	steps := fs.Int("steps", 10, "number of intervals between t = 0 and t = 1")
	from := fs.Float64("from", 0, "first t")
	to := fs.Float64("to", 1, "last t")
	strict := fs.Bool("strict", false, "reject t outside [0, 1] instead of clamping")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := setupLogging(stderr, *verbose)

	mode, err := ease.ParseMode(*modeName)
	if err != nil {
		return err
	}
	if *steps < 1 {
		return fmt.Errorf("ease: steps must be positive, got %d", *steps)
	}
	policy := ease.Clamp
	if *strict {
		policy = ease.Strict
	}
	log.Debug("easing table", "mode", mode, "policy", policy, "steps", *steps)

	for i := range *steps + 1 {
		t := ease.Lerp(float64(i)/float64(*steps), *from, *to)
		v, err := policy.Apply(mode, t)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(stdout, "%g %g\n", t, ease.Lerp(v, *lo, *hi)); err != nil {
			return err
		}
	}
	return nil
}
