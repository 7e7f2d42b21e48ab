package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

// syncTimeout bounds a single scheduled sync run, covering both brokerage
// round trips and the mirror rewrite.
const syncTimeout = 2 * time.Minute

// HoldingsSyncJob refreshes the local holdings mirror from the brokerage.
// It should be scheduled to run daily, shortly before market open.
type HoldingsSyncJob struct {
	brokerService *service.BrokerService
	log           zerolog.Logger
}

// NewHoldingsSyncJob creates a new holdings sync job.
func NewHoldingsSyncJob(brokerService *service.BrokerService, log zerolog.Logger) *HoldingsSyncJob {
	return &HoldingsSyncJob{
		brokerService: brokerService,
		log:           log.With().Str("job", "holdings_sync").Logger(),
	}
}

// Run executes the sync. When no brokerage session exists the job is a
// no-op: a disconnected broker is a normal state, not a failure.
func (j *HoldingsSyncJob) Run() error {
	status, err := j.brokerService.Status()
	if err != nil {
		j.log.Error().Err(err).Msg("Failed to check broker status")
		return err
	}
	if !status.Connected {
		j.log.Debug().Msg("No broker session, skipping holdings sync")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	overview, err := j.brokerService.SyncHoldings(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("Failed to sync holdings")
		return err
	}

	j.log.Info().
		Int("equities", len(overview.Equities)).
		Int("funds", len(overview.Funds)).
		Msg("Holdings sync completed")

	return nil
}

// Name returns the job name for scheduling and logging.
func (j *HoldingsSyncJob) Name() string {
	return "holdings_sync"
}
