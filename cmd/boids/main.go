package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/config"
	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/render"
	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/telemetry"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	golog "github.com/tochemey/goakt/v3/log"
)

const (
	windowTitle   = "Boids"
	statsInterval = 5 * time.Second
)

var (
	configFlag   = flag.String("config", "", "optional JSON file overriding the default tuning")
	rendererFlag = flag.String("renderer", "window", "where to draw the flock: window, terminal or headless")
	seedFlag     = flag.Uint64("seed", 0, "random seed for the initial flock (0 picks one from the clock)")
	framesFlag   = flag.Uint64("frames", 0, "stop after that many frames (0 runs until quit; headless defaults to 600)")
	debugFlag    = flag.Bool("debug", false, "log at debug level")
	logFlag      = flag.String("log", "", "write logs to this file instead of stderr")
	statsFlag    = flag.Bool("stats", true, "log frame statistics every few seconds")
)

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger(*logFlag, *debugFlag, *rendererFlag == "terminal")
	if err != nil {
		fmt.Fprintf(os.Stderr, "boids: %v\n", err)
		os.Exit(1)
	}

	err = run(logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "boids: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the given file, or stderr. The terminal renderer owns
// the screen, so without a file its logs are dropped.
func newLogger(path string, debug, quiet bool) (golog.Logger, func(), error) {
	level := golog.InfoLevel
	if debug {
		level = golog.DebugLevel
	}

	if path == "" {
		var w io.Writer = os.Stderr
		if quiet {
			w = io.Discard
		}
		return golog.New(level, w), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return golog.New(level, f), func() { _ = f.Close() }, nil
}

func run(logger golog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 1. Configuration
	cfg := config.DefaultConfig()
	if *configFlag != "" {
		loaded, err := config.LoadConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Infof("loaded config from %s", *configFlag)
	}

	// 2. Flock
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	settings := cfg.Settings()
	engine := flock.NewEngine(flock.NewFlock(cfg.NumBoids, settings, rand.New(rand.NewPCG(seed, seed))), settings)
	logger.Debugf("flock of %d boids created with seed %d", cfg.NumBoids, seed)

	// 3. Telemetry
	opts := render.Options{MaxFrames: *framesFlag, Logger: logger}
	if *statsFlag {
		reporter, err := telemetry.Start(ctx, logger, statsInterval)
		if err != nil {
			return err
		}
		defer func() {
			if sum, err := reporter.Summary(context.Background()); err == nil {
				logger.Infof("simulated %d frames, mean speed %.2f, average step %s", sum.Frames, sum.MeanSpeed, sum.AvgStep)
			}
			if err := reporter.Stop(context.Background()); err != nil {
				logger.Warnf("telemetry shutdown: %v", err)
			}
		}()
		opts.Sink = reporter
	}

	// 4. Renderer
	switch *rendererFlag {
	case "window":
		w := render.NewWindow(ctx, engine, windowTitle, opts)
		defer w.Close()
		return w.Run()

	case "terminal":
		term, err := render.NewTerminal(engine, opts)
		if err != nil {
			return err
		}
		defer term.Close()
		return term.Run(ctx)

	case "headless":
		if opts.MaxFrames == 0 {
			opts.MaxFrames = 600
		}
		return render.NewHeadless(engine, opts).Run(ctx)

	default:
		return fmt.Errorf("unknown renderer %q (want window, terminal or headless)", *rendererFlag)
	}
}
