package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/alerts"
)

// UserLister lists every user with stored data
type UserLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// AlertEvaluator produces the current alerts for one user
type AlertEvaluator interface {
	GetRiskAlerts(ctx context.Context, userID string) ([]alerts.Alert, error)
}

// SweepSummary is the outcome of one alert sweep
type SweepSummary struct {
	Users      int                     `json:"users"`
	Failed     int                     `json:"failed"`
	Alerts     int                     `json:"alerts"`
	BySeverity map[alerts.Severity]int `json:"by_severity"`
	ByUser     map[string]int          `json:"by_user"`
}

// AlertSweepJob evaluates alerts for every stored user and logs the counts
type AlertSweepJob struct {
	users   UserLister
	alerts  AlertEvaluator
	timeout time.Duration
	log     zerolog.Logger
}

// NewAlertSweepJob creates the sweep job. A zero timeout means no deadline.
func NewAlertSweepJob(users UserLister, evaluator AlertEvaluator, timeout time.Duration, log zerolog.Logger) *AlertSweepJob {
	return &AlertSweepJob{
		users:   users,
		alerts:  evaluator,
		timeout: timeout,
		log:     log.With().Str("job", "alert_sweep").Logger(),
	}
}

// Name returns the job name
func (j *AlertSweepJob) Name() string {
	return "alert_sweep"
}

// Run executes one sweep
func (j *AlertSweepJob) Run() error {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}
	_, err := j.Sweep(ctx)
	return err
}

// Sweep evaluates every user. A failure for one user is logged and counted
// without stopping the sweep.
func (j *AlertSweepJob) Sweep(ctx context.Context) (SweepSummary, error) {
	ids, err := j.users.ListUserIDs(ctx)
	if err != nil {
		return SweepSummary{}, fmt.Errorf("failed to list users: %w", err)
	}

	summary := SweepSummary{
		BySeverity: make(map[alerts.Severity]int),
		ByUser:     make(map[string]int, len(ids)),
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Users++

		userAlerts, err := j.alerts.GetRiskAlerts(ctx, id)
		if err != nil {
			summary.Failed++
			j.log.Warn().Err(err).Str("user_id", id).Msg("Failed to evaluate alerts")
			continue
		}

		summary.ByUser[id] = len(userAlerts)
		summary.Alerts += len(userAlerts)
		for _, a := range userAlerts {
			summary.BySeverity[a.Severity]++
		}
	}

	j.log.Info().
		Int("users", summary.Users).
		Int("failed", summary.Failed).
		Int("alerts", summary.Alerts).
		Int("high", summary.BySeverity[alerts.SeverityHigh]).
		Int("medium", summary.BySeverity[alerts.SeverityMedium]).
		Int("low", summary.BySeverity[alerts.SeverityLow]).
		Msg("Alert sweep completed")

	return summary, nil
}
