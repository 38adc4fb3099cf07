// Command weatherpath loads a road file and answers weather-aware shortest
// route queries, either as a line console on stdin/stdout or over HTTP.
//
// Usage:
//
//	weatherpath --data roads.txt --regime rain
//	weatherpath --mode http --addr :8080 --cors-origins http://localhost:3000
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/internal/config"
	"github.com/katalvlaran/weatherpath/internal/console"
	"github.com/katalvlaran/weatherpath/internal/httpapi"
	"github.com/katalvlaran/weatherpath/network"
	"github.com/katalvlaran/weatherpath/planner"
	"github.com/katalvlaran/weatherpath/textio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := config.Load(config.NewFlagSet("weatherpath"), args, nil)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := bufio.NewReader(stdin)
	if err = ensureDataFile(cfg, in, stdout, logger); err != nil {
		logger.Error("data file unavailable", zap.String("path", cfg.DataFile), zap.Error(err))
		return 1
	}

	g := network.New()
	rep, err := textio.LoadFile(cfg.DataFile, g, textio.WithLogger(logger))
	if err != nil {
		logger.Error("load failed", zap.Error(err))
		return 1
	}
	if g.Len() == 0 {
		logger.Error("no cities loaded", zap.String("path", cfg.DataFile), zap.Int("skipped", len(rep.Skipped)))
		return 1
	}
	logger.Info("network loaded",
		zap.String("path", cfg.DataFile),
		zap.Int("cities", g.Len()),
		zap.Int("roads", rep.Loaded),
		zap.Int("skipped", len(rep.Skipped)))

	regime, _ := cfg.ParsedRegime()
	policy, _ := cfg.ParsedCenterPolicy()
	p, err := planner.New(g,
		planner.WithLogger(logger),
		planner.WithCacheSize(cfg.CacheSize),
		planner.WithCenterPolicy(policy),
		planner.WithRegime(regime))
	if err != nil {
		logger.Error("planner", zap.Error(err))
		return 1
	}

	switch cfg.Mode {
	case config.ModeHTTP:
		srv := httpapi.New(p,
			httpapi.WithLogger(logger),
			httpapi.WithCORSOrigins(cfg.CORSOrigins...),
			httpapi.WithOnChange(func() {
				if err := textio.SaveFile(cfg.SaveFile, g); err != nil {
					logger.Error("save failed", zap.String("path", cfg.SaveFile), zap.Error(err))
				}
			}))
		if err = srv.ListenAndServe(ctx, cfg.Addr); err != nil {
			logger.Error("http server", zap.Error(err))
			return 1
		}
	default:
		fmt.Fprintf(stdout, "%d cities loaded, regime %s. Type help for commands.\n", g.Len(), p.Active())
		c := console.New(p, in, stdout,
			console.WithLogger(logger),
			console.WithSavePath(cfg.SaveFile),
			console.WithPrompt())
		if err = c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("console", zap.Error(err))
			return 1
		}
		if err = textio.SaveFile(cfg.SaveFile, g); err != nil {
			logger.Error("save failed", zap.String("path", cfg.SaveFile), zap.Error(err))
			return 1
		}
		logger.Info("roads saved", zap.String("path", cfg.SaveFile))
	}

	return 0
}

// ensureDataFile writes the sample when the data file is missing and either
// create_sample is set or the console user agrees.
func ensureDataFile(cfg *config.Config, in *bufio.Reader, out io.Writer, logger *zap.Logger) error {
	_, err := os.Stat(cfg.DataFile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	create := cfg.CreateSample
	if !create && cfg.Mode == config.ModeConsole {
		fmt.Fprintf(out, "%s not found. Create the sample network? [y/N] ", cfg.DataFile)
		answer, _ := in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "s", "si", "sí":
			create = true
		}
	}
	if !create {
		return err
	}
	if err = textio.WriteSampleFile(cfg.DataFile); err != nil {
		return err
	}
	logger.Info("sample network written", zap.String("path", cfg.DataFile))

	return nil
}
