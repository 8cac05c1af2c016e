// Package remind implements the daily reminder job: a recurring,
// idempotent task that reads the ledger and nudges the user to record
// today's spending. It runs independently of any open UI session and
// tolerates a transiently busy store by retrying instead of dying.
package remind

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
)

// Decision is the notification content chosen from current data.
// Re-running the job against unchanged data produces the same decision.
type Decision struct {
	Title   string
	Message string
}

// Decide picks the reminder message. formattedExpense is yesterday's
// expense total already formatted for display; it is only used when
// today has no entries and yesterday's expense was positive.
func Decide(lang string, todayCount int, yesterdayExpense int64, formattedExpense string) Decision {
	if lang == model.LanguageEN {
		d := Decision{Title: "Spending reminder 💸"}
		switch {
		case todayCount == 0 && yesterdayExpense > 0:
			d.Message = fmt.Sprintf("Yesterday you spent %s. Don't forget to log today's spending! 💰", formattedExpense)
		case todayCount == 0:
			d.Message = "You haven't logged any spending today. Update now! 📝"
		default:
			d.Message = fmt.Sprintf("You already have %d transactions today. Keep them up to date! ✅", todayCount)
		}
		return d
	}

	d := Decision{Title: "Nhắc nhở chi tiêu 💸"}
	switch {
	case todayCount == 0 && yesterdayExpense > 0:
		d.Message = fmt.Sprintf("Hôm qua bạn chi %s. Hãy ghi chép chi tiêu hôm nay nhé! 💰", formattedExpense)
	case todayCount == 0:
		d.Message = "Bạn chưa ghi chép chi tiêu hôm nay. Hãy cập nhật ngay! 📝"
	default:
		d.Message = fmt.Sprintf("Hôm nay bạn đã có %d giao dịch. Đừng quên cập nhật đầy đủ nhé! ✅", todayCount)
	}
	return d
}

// Notifier delivers a notification to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Reminder reads the store and sends the daily nudge.
type Reminder struct {
	store    *storage.Store
	notifier Notifier
	now      func() model.Date
}

// New creates a reminder over the given store and notifier.
func New(store *storage.Store, notifier Notifier) *Reminder {
	return &Reminder{store: store, notifier: notifier, now: model.Today}
}

// RunOnce makes one notification decision from current data and
// delivers it. Store reads are retried with backoff; a notification
// delivery failure (e.g. permission denied) degrades silently.
func (r *Reminder) RunOnce(ctx context.Context) error {
	var decision Decision

	err := common.WithRetry(ctx, func() error {
		today := r.now()
		yesterday := today.AddDays(-1)

		todayTxns, err := r.store.GetTransactionsInRange(ctx, today, today)
		if err != nil {
			return err
		}
		yesterdayTxns, err := r.store.GetTransactionsInRange(ctx, yesterday, yesterday)
		if err != nil {
			return err
		}
		settings, err := r.store.GetSettings(ctx)
		if err != nil {
			return err
		}

		var yesterdayExpense int64
		for _, txn := range yesterdayTxns {
			if txn.Type == model.TypeExpense {
				yesterdayExpense += txn.Amount
			}
		}

		decision = Decide(settings.Language, len(todayTxns), yesterdayExpense,
			currency.Format(yesterdayExpense, settings.Currency))
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})
	if err != nil {
		return err
	}

	if err := r.notifier.Notify(decision.Title, decision.Message); err != nil {
		// No notification permission means the feature simply does not
		// notify; nothing is surfaced to the user.
		slog.Warn("notification not delivered", "error", err)
	}
	return nil
}

// RunDaemon runs the reminder on a fixed interval until ctx is
// canceled. A failed run schedules a retry on the next tick; it never
// kills the daemon. The pidfile keeps a second daemon from registering
// a duplicate schedule.
func (r *Reminder) RunDaemon(ctx context.Context, interval time.Duration, pidfile string) error {
	if pidfile != "" {
		if running, pid := daemonRunning(pidfile); running {
			slog.Info("reminder daemon already scheduled, keeping existing schedule", "pid", pid)
			return nil
		}
		if err := os.WriteFile(pidfile, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
			return fmt.Errorf("failed to write pidfile: %w", err)
		}
		defer func() { _ = os.Remove(pidfile) }()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("reminder daemon started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				common.LogError(err, "reminder run failed, will retry next interval", nil)
			}
		}
	}
}

// daemonRunning reports whether the pidfile names a live process.
func daemonRunning(pidfile string) (bool, int) {
	data, err := os.ReadFile(pidfile)
	if err != nil {
		return false, 0
	}
	pid, err := strconv.Atoi(string(data))
	if err != nil || pid <= 0 {
		return false, 0
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false, 0
	}
	if err := proc.Signal(syscall.Signal(0)); err != nil {
		return false, 0
	}
	return true, pid
}
