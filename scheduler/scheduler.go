package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"sorveteria-backend/services"
)

// Scheduler runs the two maintenance operations on a timer so the profile
// stays fresh even when no external cron hits the HTTP endpoints.
type Scheduler struct {
	cron *cron.Cron
	svc  *services.Service
}

func New(svc *services.Service) *Scheduler {
	return &Scheduler{cron: cron.New(), svc: svc}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	// Just after midnight, when yesterday's expiry dates fall out of the
	// retention window.
	if _, err := s.cron.AddFunc("5 0 * * *", s.RemoveExpiredPromocoes); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("*/10 * * * *", s.UpdateStatus); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) RemoveExpiredPromocoes() {
	if n := s.svc.RemoveExpiredPromocoes(); n > 0 {
		log.Printf("scheduler: removed %d expired promotion(s)", n)
	}
}

func (s *Scheduler) UpdateStatus() {
	s.svc.RecomputeStatus()
}
