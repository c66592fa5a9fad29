// Command syukujitsu answers Japanese holiday questions from the Cabinet
// Office holiday list.
//
// Usage:
//
//	syukujitsu check [-csv syukujitsu.csv] 2022-03-21 2021-08-09
//	syukujitsu fetch [-output syukujitsu.csv]
//	syukujitsu gen [-csv syukujitsu.csv] [-output holidays_data.go] [-package holidays]
//	syukujitsu serve [-listen :8080]
//
// Every subcommand also accepts -config FILE (YAML) and honours LOG_LEVEL.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rabitt1ove/syukujitsu"
	"github.com/rabitt1ove/syukujitsu/internal/api"
	"github.com/rabitt1ove/syukujitsu/internal/config"
	"github.com/rabitt1ove/syukujitsu/internal/logging"
	"github.com/rabitt1ove/syukujitsu/source"
)

// minExpectedRows guards against saving a truncated download.
const minExpectedRows = 1000

const usage = "usage: syukujitsu <check|fetch|gen|serve> [flags] [args]"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "syukujitsu:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("output", "", "output file for fetch (syukujitsu.csv) or gen (holidays_data.go)")
	pkg := fs.String("package", "holidays", "package name for gen")
	varName := fs.String("var", "Rows", "variable name for gen")

	cfg, err := config.Parse(fs, rest)
	if err != nil {
		return err
	}
	logger := logging.New(config.AppName, cfg.LogLevel, stderr)

	switch cmd {
	case "check":
		return runCheck(cfg, fs.Args(), stdout)
	case "fetch":
		return runFetch(ctx, cfg, orDefault(*output, "syukujitsu.csv"), logger)
	case "gen":
		return runGen(cfg, orDefault(*output, "holidays_data.go"), *pkg, *varName, logger)
	case "serve":
		return runServe(ctx, cfg, logger)
	default:
		return fmt.Errorf("unknown command %q; %s", cmd, usage)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func loadCalendar(cfg config.Config) (*syukujitsu.Calendar, error) {
	rows, err := source.ReadFileWith(cfg.CSVPath, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return syukujitsu.New(append(rows, cfg.ExtraRows()...))
}

func runCheck(cfg config.Config, dates []string, stdout io.Writer) error {
	if len(dates) == 0 {
		return errors.New("check: no dates given (YYYY-MM-DD)")
	}
	cal, err := loadCalendar(cfg)
	if err != nil {
		return err
	}
	for _, s := range dates {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		y, m, d := t.Date()
		kind := cal.Classify(y, int(m)-1, d)
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", s, kind, cal.HolidayName(y, int(m)-1, d))
	}
	return nil
}

func runFetch(ctx context.Context, cfg config.Config, output string, logger *logrus.Logger) error {
	f := source.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, logger)
	f.CKANURL = cfg.CKANURL
	f.FallbackURLs = cfg.SourceURLs
	f.MaxRetries = cfg.MaxRetries

	body, err := f.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	rows, err := source.Decode(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("fetch: downloaded file does not parse: %w", err)
	}
	if len(rows) < minExpectedRows {
		return fmt.Errorf("fetch: expected at least %d rows, got %d", minExpectedRows, len(rows))
	}
	if err := os.WriteFile(output, body, 0o644); err != nil {
		return err
	}
	logger.Infof("wrote %d holidays to %s", len(rows), output)
	return nil
}

func runServe(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	cal, err := loadCalendar(cfg)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d public holidays from %s", cal.Len(), cfg.CSVPath)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewRouter(api.NewController(cal, logger), cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
