package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/free-perceptron/infra/config"
	"github.com/drakos74/free-perceptron/internal/canvas"
	"github.com/drakos74/free-perceptron/internal/points"
	"github.com/drakos74/free-perceptron/internal/server"
	"github.com/drakos74/free-perceptron/internal/storage"
	"github.com/drakos74/free-perceptron/internal/storage/file/json"
	"github.com/drakos74/free-perceptron/internal/train"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const configKey = "perceptron"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type options struct {
	configPath string
	port       int
	report     string
	quiet      bool
	debug      bool
	width      int
	height     int
}

func main() {
	var opts options
	cfg := train.DefaultConfig()

	flag.StringVar(&opts.configPath, "config", config.Path, "directory of the json config files")
	flag.IntVar(&opts.port, "port", 0, "port to serve the http api on, 0 disables the server")
	flag.StringVar(&opts.report, "report", "", "directory to export the session report to")
	flag.BoolVar(&opts.quiet, "quiet", false, "do not render the frames")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.IntVar(&opts.width, "width", 60, "canvas width")
	flag.IntVar(&opts.height, "height", 30, "canvas height")

	// overrides for the config file
	flag.IntVar(&cfg.Points, "points", cfg.Points, "number of points")
	flag.Float64Var(&cfg.Range, "range", cfg.Range, "coordinate range of the points")
	flag.StringVar(&cfg.Convention, "convention", cfg.Convention, "coordinate convention: centered or origin")
	flag.Float64Var(&cfg.LearningRate, "rate", cfg.LearningRate, "learning rate")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iterations to run, 0 runs until interrupted")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 seeds from the clock")
	flag.StringVar(&cfg.Interval, "interval", cfg.Interval, "pause between iterations e.g. 100ms")
	flag.BoolVar(&cfg.StopOnConvergence, "stop", cfg.StopOnConvergence, "stop once every point is classified correctly")
	flag.Parse()

	if opts.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	cfg = load(opts.configPath, set, cfg)

	if err := run(cfg, opts); err != nil {
		log.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}

// load reads the config file and re-applies the flags given on the command line.
// An explicitly given config directory must hold a valid config.
func load(path string, set map[string]bool, flags train.Config) train.Config {
	cfg := flags
	config.Path = path
	if set["config"] {
		config.MustLoad(configKey, &cfg)
	} else if _, err := config.Load(configKey, &cfg); err != nil {
		log.Warn().Err(err).Msg("using default config")
		return flags
	}
	for name := range set {
		switch name {
		case "points":
			cfg.Points = flags.Points
		case "range":
			cfg.Range = flags.Range
		case "convention":
			cfg.Convention = flags.Convention
		case "rate":
			cfg.LearningRate = flags.LearningRate
		case "iterations":
			cfg.Iterations = flags.Iterations
		case "seed":
			cfg.Seed = flags.Seed
		case "interval":
			cfg.Interval = flags.Interval
		case "stop":
			cfg.StopOnConvergence = flags.StopOnConvergence
		}
	}
	return cfg
}

func run(cfg train.Config, opts options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session, err := train.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	if opts.port > 0 {
		srv := server.NewServer("perceptron", opts.port).
			Add(server.Live()).
			Add(server.Perceptron(session, opts.debug)...).
			Mount("/metrics", promhttp.Handler())
		if opts.debug {
			srv.Debug()
		}
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Error().Err(err).Msg("server stopped")
				cancel()
			}
		}()
	}

	convention, _ := points.ParseConvention(cfg.Convention)
	c := canvas.ForConvention(opts.width, opts.height, convention, cfg.Range)

	var listener train.Listener
	if !opts.quiet {
		listener = func(frame train.Frame) {
			// clear the terminal and redraw from the top
			fmt.Print("\033[H\033[2J")
			fmt.Print(c.Draw(frame))
			fmt.Println(canvas.Status(frame))
		}
	}

	report, err := session.Run(ctx, listener)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println(canvas.Chart(report.History, opts.width, 10))
	fmt.Println(canvas.Summary(report))

	if opts.report != "" {
		persistence, err := json.BlobShard(opts.report, storage.ReportDir)(session.ID())
		if err != nil {
			return fmt.Errorf("could not create report storage: %w", err)
		}
		err = persistence.Store(storage.Key{
			Pair:  session.ID(),
			Label: "report",
		}, report)
		if err != nil {
			return fmt.Errorf("could not export report: %w", err)
		}
		log.Info().Str("session", session.ID()).Str("dir", opts.report).Msg("exported report")
	}
	return nil
}
