package profiler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redditpersona/persona-bot/internal/config"
	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/redditpersona/persona-bot/internal/notifications"
	"github.com/redditpersona/persona-bot/internal/persona"
	"github.com/redditpersona/persona-bot/internal/report"
	"github.com/redditpersona/persona-bot/internal/sources"
	"github.com/redditpersona/persona-bot/internal/storage"
	"github.com/sirupsen/logrus"
)

// Service orchestrates the profiling pipeline: fetch a user's records,
// run persona inference, archive the results, and deliver notifications.
type Service struct {
	config   *config.Config
	archive  storage.ArchiveInterface
	notifier notifications.NotificationInterface
	engine   *persona.Engine
	sources  map[string]sources.Source
	metrics  *Metrics
	mu       sync.RWMutex
}

// Metrics holds profiling run metrics
type Metrics struct {
	PersonasGenerated int            `json:"personas_generated"`
	RecordsFetched    int            `json:"records_fetched"`
	EmptyProfiles     int            `json:"empty_profiles"`
	LastRun           time.Time      `json:"last_run"`
	LastRunDuration   string         `json:"last_run_duration"`
	SourceMetrics     map[string]int `json:"source_metrics"`
	ErrorCount        int            `json:"error_count"`
}

// NewService creates a new profiling service
func NewService(cfg *config.Config, archive storage.ArchiveInterface, notifier notifications.NotificationInterface) *Service {
	service := &Service{
		config:   cfg,
		archive:  archive,
		notifier: notifier,
		engine:   persona.NewEngine(),
		metrics: &Metrics{
			SourceMetrics: make(map[string]int),
		},
	}

	service.initializeSources()

	return service
}

func (s *Service) initializeSources() {
	reddit := sources.NewRedditSource(s.config.RequestsPerSec, s.config.FetchCacheTTL)
	hackernews := sources.NewHackerNewsSource()
	s.sources = map[string]sources.Source{
		reddit.GetName():     reddit,
		hackernews.GetName(): hackernews,
	}
}

// RunProfile fetches a user's records from the named source, infers a
// persona, archives the persona JSON and the rendered report, and sends
// notifications. persona.ErrNoRecords is returned unwrapped so callers can
// branch on it.
func (s *Service) RunProfile(ctx context.Context, sourceName, username string) (*models.Persona, error) {
	start := time.Now()
	logrus.Infof("Profiling %s user %s", sourceName, username)

	source, ok := s.sources[sourceName]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", sourceName)
	}
	if !source.IsEnabled() {
		return nil, fmt.Errorf("source %s is disabled", sourceName)
	}

	records, err := source.FetchRecords(ctx, username, s.config.FetchLimit)
	if err != nil {
		s.recordError()
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	result, err := s.engine.Infer(records, username)
	if err != nil {
		if err == persona.ErrNoRecords {
			logrus.Warnf("No records to analyze for %s user %s", sourceName, username)
			s.recordEmptyProfile()
			return nil, err
		}
		s.recordError()
		return nil, fmt.Errorf("persona inference failed: %w", err)
	}

	reportText := report.RenderText(result)

	if err := s.archivePersona(result, reportText); err != nil {
		logrus.Errorf("Failed to archive persona for %s: %v", username, err)
		s.recordError()
		return nil, err
	}

	if err := s.notifier.SendPersona(result, reportText); err != nil {
		logrus.Errorf("Failed to send persona notification for %s: %v", username, err)
		s.recordError()
		return nil, err
	}

	s.recordSuccess(sourceName, len(records))
	logrus.Infof("Profiled %s in %v (%d records)", username, time.Since(start), len(records))
	return result, nil
}

// RunWatchlist re-profiles every configured watchlist user concurrently.
func (s *Service) RunWatchlist() error {
	start := time.Now()

	if len(s.config.Watchlist) == 0 {
		logrus.Info("Watchlist is empty, nothing to profile")
		return nil
	}

	logrus.Infof("Starting watchlist run for %d users", len(s.config.Watchlist))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var wg sync.WaitGroup
	errorsChan := make(chan error, len(s.config.Watchlist))

	for _, username := range s.config.Watchlist {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()

			if _, err := s.RunProfile(ctx, s.config.WatchlistSource, username); err != nil {
				if err != persona.ErrNoRecords {
					errorsChan <- fmt.Errorf("%s: %w", username, err)
				}
			}
		}(username)
	}

	wg.Wait()
	close(errorsChan)

	errorCount := 0
	for err := range errorsChan {
		logrus.Errorf("Watchlist profile failed: %v", err)
		errorCount++
	}

	s.finishRun(time.Since(start))

	if errorCount > 0 {
		return fmt.Errorf("watchlist run finished with %d failures", errorCount)
	}

	logrus.Infof("Watchlist run completed in %v", time.Since(start))
	return nil
}

func (s *Service) archivePersona(p *models.Persona, reportText string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}

	stamp := p.GeneratedAt.Format("2006-01-02-15-04-05")
	base := fmt.Sprintf("personas/%s/%s", p.Username, stamp)

	if err := s.archive.Store(base+".json", data); err != nil {
		return fmt.Errorf("failed to archive persona JSON: %w", err)
	}
	if err := s.archive.Store(base+".txt", []byte(reportText)); err != nil {
		return fmt.Errorf("failed to archive persona report: %w", err)
	}

	return nil
}

func (s *Service) recordSuccess(sourceName string, recordCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.PersonasGenerated++
	s.metrics.RecordsFetched += recordCount
	s.metrics.SourceMetrics[sourceName]++
}

func (s *Service) recordEmptyProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.EmptyProfiles++
}

func (s *Service) recordError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.ErrorCount++
}

func (s *Service) finishRun(duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.LastRun = time.Now()
	s.metrics.LastRunDuration = duration.String()
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
