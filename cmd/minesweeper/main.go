// minesweeper is a terminal Minesweeper.
//
//	minesweeper [flags] [Beginner|Intermediate|Expert]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/tui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	log = logrus.New()

	configPath  string
	headless    bool
	seed        uint64
	custom      string
	showVersion bool
	writeConfig bool
)

func init() {
	const usage = "config file path (default: search the XDG config dirs)"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&headless, "headless", false, "play with text commands on stdin/stdout")
	flag.Uint64Var(&seed, "seed", 0, "seed for mine placement, 0 picks one at random")
	flag.StringVar(&custom, "custom", "", "custom board as HEIGHT:WIDTH:MINES")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&writeConfig, "write-config", false, "write the default config to the XDG config dir and exit")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: minesweeper [flags] [%s]\n", strings.Join(mines.DifficultyNames(), "|"))
		flag.PrintDefaults()
	}
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func usageError(err error) {
	fmt.Fprintf(os.Stderr, "minesweeper: %s\n", err)
	flag.Usage()
	os.Exit(2)
}

func setupLogging(cfg *config.Config) error {
	log.SetLevel(cfg.LogLevel())
	mines.Log = log

	if headless {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		return nil
	}

	// the terminal belongs to the UI, so everything goes to the log file
	path, err := cfg.LogFile()
	if err != nil {
		return fmt.Errorf("unable to locate log file: %w", err)
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Level:      cfg.LogLevel(),
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("minesweeper %s\n", Version)
		return
	}
	if writeConfig {
		cfg := config.DefaultConfig()
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "minesweeper: unable to write config: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}
	if flag.NArg() > 1 {
		usageError(errors.New("too many arguments"))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minesweeper: %s\n", err)
		os.Exit(1)
	}

	difficulty, err := pickDifficulty(cfg.Difficulty, flag.Arg(0), custom)
	if err != nil {
		usageError(err)
	}

	if err := setupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "minesweeper: %s\n", err)
		os.Exit(1)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	r := createRand(seed)
	s, err := session.New(difficulty, session.Options{
		Log: log,
		Placer: func(mines.Difficulty) mines.Placer {
			return mines.RandomPlacer{Rand: r}
		},
	})
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		if headless {
			return console.New(s, os.Stdin, os.Stdout, log).Run(gCtx)
		}
		return tui.New(s, cfg, log).Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("exit reason: %s", err)
		os.Exit(1)
	}
}
