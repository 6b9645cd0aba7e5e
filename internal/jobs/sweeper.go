// internal/jobs/sweeper.go
package jobs

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tmarchal/vitrine/internal/theme"
)

const sweepJobName = "theme_cache_sweep"

// CacheSweeper periodically evicts expired entries from the theme resolver
// cache so tenants on long-idle subdomains do not pin stale config in memory.
type CacheSweeper struct {
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

// StartCacheSweeper runs resolver.Sweep every interval on a dedicated
// scheduler. The returned sweeper must be shut down on exit.
func StartCacheSweeper(resolver *theme.Resolver, interval time.Duration) (*CacheSweeper, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("Sweep job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	jobLogger := log.With().
		Str("job_name", sweepJobName).
		Dur("interval", interval).
		Logger()

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			evicted := resolver.Sweep()
			if evicted > 0 {
				jobLogger.Debug().Int("evicted", evicted).Msg("Swept expired theme cache entries")
			}
		}),
		gocron.WithName(sweepJobName),
	)
	if err != nil {
		scheduler.Shutdown()
		return nil, err
	}

	scheduler.Start()
	jobLogger.Info().Msg("Theme cache sweeper started")

	return &CacheSweeper{scheduler: scheduler}, nil
}

// Shutdown stops the sweeper. Safe to call more than once.
func (s *CacheSweeper) Shutdown() error {
	s.stopOnce.Do(func() {
		log.Info().Msg("Theme cache sweeper stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
