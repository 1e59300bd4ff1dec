package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/motus/dic"
	"github.com/powellquiring/motus/ui"
)

type GlobalConfiguration struct {
	store *dic.Store
	rng   *rand.Rand
	color bool
}

type options struct {
	dicPath  string
	fileType string
	config   string
	lenient  bool
	seed     uint64
	logLevel string
	noColor  bool
	profile  bool
}

func setupLogging(level string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func loadStore(opts *options) (*dic.Store, error) {
	if opts.dicPath == "" {
		return dic.Default()
	}
	reader := dic.NewReader()
	reader.Lenient = opts.lenient
	if opts.config != "" {
		if err := reader.ReadSubstitutions(opts.config); err != nil {
			return nil, err
		}
	}
	return reader.Read(opts.dicPath, opts.fileType)
}

func globalConfiguration(opts *options) (GlobalConfiguration, error) {
	store, err := loadStore(opts)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Int("words", store.Len()).Str("shape", store.Shape().String()).Uint64("seed", seed).Msg("dictionary loaded")
	return GlobalConfiguration{
		store: store,
		rng:   rand.New(rand.NewPCG(seed, seed>>1)),
		color: !opts.noColor && ui.ColorEnabled(os.Stdout),
	}, nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func main() {
	_ = godotenv.Load()
	opts := &options{}

	// withConfig loads the dictionary before running a command action.
	withConfig := func(action configuredAction) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if opts.profile {
				stop, err := cpuProfile()
				if err != nil {
					return cli.Exit(fmt.Sprintf("profile: %v", err), 1)
				}
				defer stop()
			}
			gc, err := globalConfiguration(opts)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return action(ctx, cmd, gc)
		}
	}

	cmd := &cli.Command{
		Name:  "motus",
		Usage: "motus word game: play, let bots play, or solve",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dic",
				Aliases:     []string{"d"},
				Usage:       "dictionary file, the embedded French dictionary by default",
				Sources:     cli.EnvVars("MOTUS_DIC"),
				Destination: &opts.dicPath,
			},
			&cli.StringFlag{
				Name:        "filetype",
				Usage:       "dictionary file type, text/plain or application/x-yaml, inferred from the extension by default",
				Sources:     cli.EnvVars("MOTUS_FILETYPE"),
				Destination: &opts.fileType,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "substitution file applied when reading the dictionary, one 'OLD NEW' pair per line",
				Sources:     cli.EnvVars("MOTUS_CONFIG"),
				Destination: &opts.config,
			},
			&cli.BoolFlag{
				Name:        "lenient",
				Usage:       "skip dictionary words with characters outside A-Z instead of failing",
				Sources:     cli.EnvVars("MOTUS_LENIENT"),
				Destination: &opts.lenient,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "random seed, 0 seeds from the clock",
				Sources:     cli.EnvVars("MOTUS_SEED"),
				Destination: &opts.seed,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("MOTUS_LOG_LEVEL"),
				Destination: &opts.logLevel,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "do not colour hints",
				Sources:     cli.EnvVars("NO_COLOR"),
				Destination: &opts.noColor,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Usage:       "store profile data to analyze",
				Destination: &opts.profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(opts.logLevel); err != nil {
				return ctx, cli.Exit(err.Error(), 1)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			playCommand(withConfig),
			botCommand(withConfig),
			hintCommand(),
			firstCommand(withConfig),
			narrowCommand(withConfig),
			convertCommand(opts),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("motus")
	}
}
