package scheduler

import (
	"github.com/redditpersona/persona-bot/internal/config"
	"github.com/redditpersona/persona-bot/internal/profiler"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Service handles scheduling of watchlist profiling runs
type Service struct {
	config          *config.Config
	profilerService *profiler.Service
	cron            *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, profilerService *profiler.Service) *Service {
	return &Service{
		config:          cfg,
		profilerService: profilerService,
		cron:            cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled watchlist runs
func (s *Service) Start() error {
	var cronExpression string

	switch s.config.RefreshSchedule {
	case "daily":
		// Run daily at 9 AM UTC
		cronExpression = "0 0 9 * * *"
	case "weekly":
		// Run weekly on Monday at 9 AM UTC
		cronExpression = "0 0 9 * * MON"
	default:
		cronExpression = "0 0 9 * * MON"
	}

	_, err := s.cron.AddFunc(cronExpression, func() {
		logrus.Info("Starting scheduled watchlist run")
		if err := s.profilerService.RunWatchlist(); err != nil {
			logrus.Errorf("Scheduled watchlist run failed: %v", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s watchlist schedule", s.config.RefreshSchedule)
	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
