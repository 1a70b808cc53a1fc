package services

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSummarySchedule fires at 18:00 every day
const DefaultSummarySchedule = "0 18 * * *"

// SummaryCron logs the daily attendance summary on a cron schedule
type SummaryCron struct {
	dashboard *DashboardService
	cron      *cron.Cron
	log       zerolog.Logger
	timeout   time.Duration
}

// NewSummaryCron creates a summary job for the given standard 5-field schedule
func NewSummaryCron(dashboard *DashboardService, schedule string) (*SummaryCron, error) {
	s := &SummaryCron{
		dashboard: dashboard,
		cron:      cron.New(),
		log:       logger.Component("summary-cron"),
		timeout:   30 * time.Second,
	}
	if schedule == "" {
		schedule = DefaultSummarySchedule
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid summary schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the scheduler in its own goroutine
func (s *SummaryCron) Start() {
	s.cron.Start()
	s.log.Info().Msg("summary cron started")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *SummaryCron) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("summary cron stopped")
}

// Run logs one summary immediately
func (s *SummaryCron) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	summary, err := s.dashboard.GetSummary(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build daily summary")
		return
	}
	s.log.Info().
		Int64("total_employees", summary.TotalEmployees).
		Int64("present_today", summary.PresentToday).
		Int64("absent_today", summary.AbsentToday).
		Msg("daily attendance summary")
}
