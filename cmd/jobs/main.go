package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"bulwark/internal/app"
	"bulwark/internal/period"
	"bulwark/internal/platform/config"
	"bulwark/internal/platform/logger"
)

const dayLayout = "2006-01-02"

// job runs one batch command against the wired application.
type job func(ctx context.Context, a *app.App, args []string) error

var jobs = map[string]job{
	"task-gen":          runTaskGen,
	"permission-verify": runPermissionVerify,
	"job-transfer":      runJobTransfer,
	"ticket-verify":     runTicketVerify,
	"cache-preheat":     runCachePreheat,
	"risk-reminder":     runRiskReminder,
	"log-scan":          runLogScan,
	"notify-relay":      runNotifyRelay,
}

func main() {
	os.Exit(Run(os.Args, os.Stderr))
}

// Run dispatches args[1] to its job and returns the process exit code.
func Run(args []string, stderr io.Writer) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}
	name := args[1]
	run, ok := jobs[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown job %q\n", name)
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	log := logger.New(cfg.Log).With("job", name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build application", "error", err)
		return 1
	}
	defer a.Close()

	start := time.Now()
	err = run(ctx, a, args[2:])
	a.Metrics.ObserveJob(name, time.Since(start).Seconds(), err)
	if err != nil {
		log.Error("job failed", "error", err, "duration", time.Since(start))
		return 1
	}
	log.Info("job done", "duration", time.Since(start))
	return 0
}

func usage(w io.Writer) {
	names := make([]string, 0, len(jobs))
	for n := range jobs {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: jobs <job> [flags]")
	for _, n := range names {
		fmt.Fprintln(w, "  "+n)
	}
}

func runTaskGen(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("task-gen", flag.ContinueOnError)
	force := fs.Bool("force", false, "create tasks even when today is not a trigger day")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := a.Generator.Run(ctx, *force)
	a.Logger.InfoContext(ctx, "[TASK_GEN] finished",
		"created", res.Created,
		"existing", res.Existing,
		"skipped", res.Skipped,
	)
	return err
}

func runPermissionVerify(ctx context.Context, a *app.App, _ []string) error {
	a.Logger.InfoContext(ctx, "[PERMISSION_VERIFY] begin")
	return a.RiskRunner.Run(ctx)
}

func runJobTransfer(ctx context.Context, a *app.App, _ []string) error {
	a.Logger.InfoContext(ctx, "[JOB_TRANSFER] begin")
	return a.JobTransfer.Run(ctx)
}

func runTicketVerify(ctx context.Context, a *app.App, args []string) error {
	start, end, err := parseWindow("ticket-verify", args, time.Now())
	if err != nil {
		return err
	}
	sum, err := a.Verifier.VerifyAll(ctx, start, end)
	a.Logger.InfoContext(ctx, "[TICKET_VERIFY] finished",
		"start", start.Format(dayLayout),
		"end", end.Format(dayLayout),
		"commits", sum.Commits,
		"risky", sum.Risky,
		"excused", sum.Excused,
		"updated", sum.Updated,
	)
	return err
}

func runCachePreheat(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("cache-preheat", flag.ContinueOnError)
	concurrency := fs.Int("c", a.Config.Audit.PreheatConcurrency, "tasks warmed in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if a.Redis == nil {
		a.Logger.WarnContext(ctx, "[CACHE_PREHEAT] no redis configured, nothing to warm")
		return nil
	}
	p := a.Preheater
	if *concurrency != a.Config.Audit.PreheatConcurrency {
		p = a.NewPreheater(*concurrency)
	}
	n, err := p.Run(ctx)
	a.Logger.InfoContext(ctx, "[CACHE_PREHEAT] finished", "warmed", n)
	return err
}

func runRiskReminder(ctx context.Context, a *app.App, _ []string) error {
	content, err := a.Reminder.Run(ctx)
	if err != nil {
		return err
	}
	if content == "" {
		a.Logger.InfoContext(ctx, "[RISK_REMINDER] no risky systems today")
		return nil
	}
	// The reminder only queues; deliver it before the process exits.
	sent, err := a.Relay.RunOnce(ctx)
	a.Logger.InfoContext(ctx, "[RISK_REMINDER] pushed", "delivered", sent)
	return err
}

func runLogScan(ctx context.Context, a *app.App, args []string) error {
	start, end, err := parseWindow("log-scan", args, time.Now())
	if err != nil {
		return err
	}
	n, err := a.LogScanner.Run(ctx, start, end)
	a.Logger.InfoContext(ctx, "[LOG_SCAN] finished", "scanned", n)
	return err
}

func runNotifyRelay(ctx context.Context, a *app.App, _ []string) error {
	err := a.Relay.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// parseWindow reads -start and -end days. Both default to the day before
// now and now, so the window is [yesterday, today).
func parseWindow(name string, args []string, now time.Time) (time.Time, time.Time, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	startArg := fs.String("start", "", "first day, "+dayLayout)
	endArg := fs.String("end", "", "day after the last, "+dayLayout)
	if err := fs.Parse(args); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, end := period.Yesterday(now), period.Day(now)
	var err error
	if *startArg != "" {
		if start, err = time.ParseInLocation(dayLayout, *startArg, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse -start: %w", err)
		}
	}
	if *endArg != "" {
		if end, err = time.ParseInLocation(dayLayout, *endArg, now.Location()); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse -end: %w", err)
		}
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("empty window %s..%s", start.Format(dayLayout), end.Format(dayLayout))
	}
	return start, end, nil
}
