package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/separator/config"
	"github.com/osuushi/separator/dbg"
	"github.com/osuushi/separator/internal"
	"github.com/osuushi/separator/scene"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Find the line through two free points that passes closest to a triangle
// without crossing it.
//
//	separator solve < scene.txt
//	separator random 40 --config separator.yaml
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	policy     string
	tolerance  float64
	bounded    bool
	workers    int
	seed       int64
	draw       string
	scale      float64
	verbose    bool
	noColor    bool

	// Flags given on the command line, whatever their value. These override
	// the config file even when they restore a zero value.
	toleranceSet bool
	boundedSet   bool
	seedSet      bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var f flags
	app := kingpin.New("separator", "Find the closest line through two free points that does not cross a triangle.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("config", "YAML config file.").Short('c').StringVar(&f.configPath)
	app.Flag("policy", "Threshold policy.").EnumVar(&f.policy, "running", "static")
	app.Flag("tolerance", "Compare coordinates with this tolerance instead of exactly.").Action(markSet(&f.toleranceSet)).Float64Var(&f.tolerance)
	app.Flag("bounded", "Treat candidate lines as segments between their two points.").Action(markSet(&f.boundedSet)).BoolVar(&f.bounded)
	app.Flag("workers", "Number of solver goroutines.").IntVar(&f.workers)
	app.Flag("draw", "Save a debug drawing to this PNG file and print it to the terminal.").StringVar(&f.draw)
	app.Flag("scale", "Pixels per unit in debug drawings.").Default("20").Float64Var(&f.scale)
	app.Flag("verbose", "Dump the full result.").Short('v').BoolVar(&f.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&f.noColor)

	solveCmd := app.Command("solve", "Solve a scene read from stdin: triangle points, a blank line, then free points, one \"x y\" per line.")
	randomCmd := app.Command("random", "Solve a scene of random points.")
	count := randomCmd.Arg("count", "Number of random points.").Required().Int()
	randomCmd.Flag("seed", "Random seed, overriding the config.").Action(markSet(&f.seedSet)).Int64Var(&f.seed)

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	colors := aurora.NewAurora(!f.noColor)
	s := newScene(cfg, !f.noColor, stderr)

	switch command {
	case solveCmd.FullCommand():
		triangle, free, err := readScene(stdin)
		if err != nil {
			return err
		}
		for _, p := range triangle {
			s.AddPoint(p, scene.TriangleSet)
		}
		for _, p := range free {
			s.AddPoint(p, scene.FreeSet)
		}
	case randomCmd.FullCommand():
		s.AddRandomPoints(*count)
	}

	if _, err := s.Solve(context.Background()); err != nil {
		return err
	}
	return report(s, f, colors, stdout)
}

// Config file first, then flags on top.
func loadConfig(f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	if f.policy != "" {
		cfg.Policy = f.policy
	}
	if f.toleranceSet {
		cfg.Tolerance = f.tolerance
	}
	if f.boundedSet {
		cfg.BoundedLine = f.bounded
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.seedSet {
		cfg.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

func markSet(set *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*set = true
		return nil
	}
}

func newScene(cfg config.Config, color bool, logOutput io.Writer) *scene.Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bounds := scene.Bounds{
		Min: internal.Point{X: cfg.Bounds.MinX, Y: cfg.Bounds.MinY},
		Max: internal.Point{X: cfg.Bounds.MaxX, Y: cfg.Bounds.MaxY},
	}
	return scene.New(bounds,
		scene.WithSolverOptions(cfg.Options()),
		scene.WithWorkers(cfg.Workers),
		scene.WithRand(rand.New(rand.NewSource(seed))),
		scene.WithLogger(log.New(logOutput, "", 0)),
		scene.WithColor(color),
	)
}

func report(s *scene.Scene, f flags, colors aurora.Aurora, out io.Writer) error {
	triangle, free := s.Positions()
	answer, ok := s.Answer()
	if !ok {
		fmt.Fprintln(out, colors.Red("no valid separating line"))
	} else {
		fmt.Fprintf(out, "%s %v %v\n", colors.Green("line:"), answer.First, answer.Second)
		fmt.Fprintf(out, "%s %v\n", colors.Green("vertex:"), answer.Vertex)
		fmt.Fprintf(out, "%s %v\n", colors.Green("distance:"), answer.Distance)
		if guide, ok := s.Guide(); ok {
			fmt.Fprintf(out, "%s %v\n", colors.Green("foot:"), guide.Perpendicular.B)
		}
		if f.verbose {
			fmt.Fprintln(out, dbg.Dump(answer))
		}
	}

	if f.draw != "" {
		var result *internal.Result
		if ok {
			result = &answer
		}
		return dbg.DrawToTerminal(free, triangle, result, f.scale, f.draw, out)
	}
	return nil
}
