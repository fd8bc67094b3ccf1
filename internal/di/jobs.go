package di

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/scheduler"
)

const (
	alertSweepTimeout  = 10 * time.Minute
	walCheckpointEvery = "@hourly"
)

// RegisterJobs creates the background jobs and registers them with a new scheduler.
// The scheduler is returned stopped.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	jobs := &JobInstances{
		Scheduler:      scheduler.New(log),
		AlertSweep:     scheduler.NewAlertSweepJob(container.Profiles, container.Alerts, alertSweepTimeout, log),
		WALCheckpoints: scheduler.NewCheckWALCheckpointsJob(container.DB, log),
	}

	if err := jobs.Scheduler.AddJob(cfg.AlertSweepSchedule, jobs.AlertSweep); err != nil {
		return nil, fmt.Errorf("failed to register alert sweep: %w", err)
	}
	if err := jobs.Scheduler.AddJob(walCheckpointEvery, jobs.WALCheckpoints); err != nil {
		return nil, fmt.Errorf("failed to register WAL checkpoint job: %w", err)
	}

	return jobs, nil
}
