// Package scanner runs the recurring upcoming-billing scan. Once a day, at a
// configured wall-clock time, it queries for subscriptions due within the
// horizon and hands the structured result to a Reporter. It only reads; a run
// abandoned mid-cycle leaves no state behind.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"sub_expenses/internal/entity"
	"sub_expenses/internal/usecase"
)

// DefaultRunAt is the daily wall-clock run time in the service time zone.
const DefaultRunAt = "09:00"

// UpcomingSource is what the scanner needs from the subscription service.
type UpcomingSource interface {
	// Today - current calendar date in the service time zone
	Today() time.Time
	// DueWithin - subscriptions across all owners due in [today, today+days]
	DueWithin(ctx context.Context, horizonDays int) ([]*entity.Subscription, error)
}

// Reporter receives the result of one scan cycle. Zero matches is still a
// report, never a silently dropped run.
type Reporter interface {
	Report(ctx context.Context, r Report)
}

// Report - structured outcome of a single scan
type Report struct {
	// WindowFrom - inclusive lower bound of the scanned window
	WindowFrom time.Time
	// WindowTo - inclusive upper bound of the scanned window
	WindowTo time.Time
	// Matches - one entry per subscription due inside the window
	Matches []Match
}

// Match - a subscription due inside the scan window
type Match struct {
	SubscriptionID  int64
	ServiceName     string
	Price           decimal.Decimal
	NextBillingDate time.Time
	// DaysUntil - whole-day distance from today to the next billing date
	DaysUntil int
	UserID    strfmt.UUID
}

// Config - worker schedule settings
type Config struct {
	// RunAt - daily run time as "HH:MM" in the service time zone
	RunAt string
	// HorizonDays - scan window length; zero means the service default
	HorizonDays int
}

// Worker triggers the daily scan.
type Worker struct {
	src UpcomingSource
	rep Reporter
	cfg Config
	loc *time.Location
	log *slog.Logger
	now func() time.Time
}

// NewWorker creates a scanner worker. A nil location falls back to UTC and a
// nil reporter falls back to slog output.
func NewWorker(src UpcomingSource, rep Reporter, cfg Config, loc *time.Location, log *slog.Logger) *Worker {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	if rep == nil {
		rep = NewSlogReporter(log)
	}
	if cfg.RunAt == "" {
		cfg.RunAt = DefaultRunAt
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = usecase.DefaultHorizonDays
	}
	return &Worker{
		src: src,
		rep: rep,
		cfg: cfg,
		loc: loc,
		log: log,
		now: time.Now,
	}
}

// Run blocks until ctx is cancelled, scanning once per day at the configured time.
func (w *Worker) Run(ctx context.Context) error {
	runAt, err := time.ParseInLocation("15:04", w.cfg.RunAt, w.loc)
	if err != nil {
		return fmt.Errorf("parse run_at %q: %w", w.cfg.RunAt, err)
	}

	w.log.Info("billing scanner started",
		slog.String("run_at", w.cfg.RunAt),
		slog.Int("horizon_days", w.cfg.HorizonDays))

	for {
		next := nextRunTime(w.now().In(w.loc), runAt.Hour(), runAt.Minute())
		timer := time.NewTimer(next.Sub(w.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			w.log.Info("billing scanner stopped")
			return ctx.Err()
		case <-timer.C:
		}

		if _, err := w.Scan(ctx); err != nil {
			// a failed cycle is logged and the schedule keeps going
			w.log.Error("billing scan failed", slog.Any("error", err))
		}
	}
}

// Scan performs one scan cycle and reports the result.
func (w *Worker) Scan(ctx context.Context) (Report, error) {
	today := w.src.Today()
	subs, err := w.src.DueWithin(ctx, w.cfg.HorizonDays)
	if err != nil {
		return Report{}, fmt.Errorf("due within %d days: %w", w.cfg.HorizonDays, err)
	}

	r := Report{
		WindowFrom: today,
		WindowTo:   today.AddDate(0, 0, w.cfg.HorizonDays),
		Matches:    make([]Match, 0, len(subs)),
	}
	for _, sub := range subs {
		r.Matches = append(r.Matches, Match{
			SubscriptionID:  sub.ID,
			ServiceName:     sub.ServiceName,
			Price:           sub.Price,
			NextBillingDate: sub.NextBillingDate,
			DaysUntil:       int(sub.NextBillingDate.Sub(today).Hours() / 24),
			UserID:          sub.UserID,
		})
	}

	w.rep.Report(ctx, r)
	return r, nil
}

// nextRunTime returns the first instant strictly after now whose local
// clock reads hh:mm.
func nextRunTime(now time.Time, hh, mm int) time.Time {
	run := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}

// SlogReporter logs scan reports through slog.
type SlogReporter struct {
	log *slog.Logger
}

func NewSlogReporter(log *slog.Logger) *SlogReporter {
	return &SlogReporter{log: log}
}

// Report logs the match count and one line per upcoming billing. An empty
// report is logged as zero found.
func (r *SlogReporter) Report(_ context.Context, rep Report) {
	window := []any{
		slog.String("from", rep.WindowFrom.Format(time.DateOnly)),
		slog.String("to", rep.WindowTo.Format(time.DateOnly)),
	}

	if len(rep.Matches) == 0 {
		r.log.Info("no upcoming billings found", window...)
		return
	}

	r.log.Info("upcoming billings found", append(window, slog.Int("count", len(rep.Matches)))...)
	for _, m := range rep.Matches {
		r.log.Info("upcoming billing",
			slog.Int64("subscription_id", m.SubscriptionID),
			slog.String("service_name", m.ServiceName),
			slog.String("price", m.Price.String()),
			slog.String("next_billing_date", m.NextBillingDate.Format(time.DateOnly)),
			slog.Int("days_until", m.DaysUntil),
			slog.String("user_id", m.UserID.String()),
		)
	}
}
