// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/azcoigreach/station-64/internal/session"
)

// Scheduler owns the cron runner and its registered jobs.
type Scheduler struct {
	cron     *cron.Cron
	registry *session.Registry
}

// NewScheduler creates a scheduler over the shared session registry.
func NewScheduler(registry *session.Registry) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		registry: registry,
	}
}

// AddStatsJob schedules a periodic log line with active session counts
// per transport. spec is standard 5-field cron syntax.
func (s *Scheduler) AddStatsJob(spec string) error {
	_, err := s.cron.AddFunc(spec, s.logStats)
	if err != nil {
		return fmt.Errorf("invalid stats schedule %q: %w", spec, err)
	}
	return nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) logStats() {
	legacy, framed := s.registry.Count()
	log.Printf("INFO: Sessions online: %d legacy, %d framed", legacy, framed)
}
