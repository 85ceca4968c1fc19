package profiler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redditpersona/persona-bot/internal/config"
	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/redditpersona/persona-bot/internal/persona"
	"github.com/redditpersona/persona-bot/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockArchive is a mock implementation of the archive interface
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Store(name string, data []byte) error {
	args := m.Called(name, data)
	return args.Error(0)
}

func (m *MockArchive) Retrieve(name string) ([]byte, error) {
	args := m.Called(name)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArchive) List(prefix string) ([]string, error) {
	args := m.Called(prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockArchive) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of the notification service
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendPersona(p *models.Persona, reportText string) error {
	args := m.Called(p, reportText)
	return args.Error(0)
}

// stubSource returns canned records for any username.
type stubSource struct {
	name    string
	records []models.Record
	err     error
}

func (s *stubSource) GetName() string { return s.name }
func (s *stubSource) IsEnabled() bool { return true }
func (s *stubSource) FetchRecords(ctx context.Context, username string, limit int) ([]models.Record, error) {
	return s.records, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		RefreshSchedule: "weekly",
		WatchlistSource: "reddit",
		FetchLimit:      100,
		RequestsPerSec:  0.5,
		FetchCacheTTL:   time.Minute,
	}
}

func testRecords() []models.Record {
	return []models.Record{
		{
			Title:     "Asking for advice",
			Body:      "I work as a developer and love programming, ? help",
			Subreddit: "cscareerquestions",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Kind:      models.KindPost,
			Permalink: "https://www.reddit.com/r/cscareerquestions/comments/abc/",
		},
		{
			Body:      "lol basically just chilling at home",
			Subreddit: "casualconversation",
			CreatedAt: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
			Kind:      models.KindComment,
			Permalink: "https://www.reddit.com/r/casualconversation/comments/def/",
		},
	}
}

func newTestService(archive *MockArchive, notifier *MockNotificationService, src sources.Source) *Service {
	service := NewService(testConfig(), archive, notifier)
	service.sources = map[string]sources.Source{src.GetName(): src}
	return service
}

func TestService_RunProfile(t *testing.T) {
	mockArchive := &MockArchive{}
	mockNotifications := &MockNotificationService{}
	src := &stubSource{name: "reddit", records: testRecords()}

	service := newTestService(mockArchive, mockNotifications, src)

	mockArchive.On("Store", mock.Anything, mock.Anything).Return(nil)
	mockNotifications.On("SendPersona", mock.Anything, mock.Anything).Return(nil)

	result, err := service.RunProfile(context.Background(), "reddit", "kojied")
	assert.NoError(t, err)
	assert.Equal(t, "kojied", result.Username)
	assert.Equal(t, 2, result.RecordsAnalyzed)
	assert.Equal(t, "Professional/Working", result.BasicInfo.Occupation)

	// Persona JSON and rendered report are both archived.
	mockArchive.AssertNumberOfCalls(t, "Store", 2)
	mockNotifications.AssertNumberOfCalls(t, "SendPersona", 1)

	var metrics Metrics
	assert.NoError(t, json.Unmarshal([]byte(service.GetMetrics()), &metrics))
	assert.Equal(t, 1, metrics.PersonasGenerated)
	assert.Equal(t, 2, metrics.RecordsFetched)
	assert.Equal(t, 1, metrics.SourceMetrics["reddit"])
}

func TestService_RunProfile_EmptyProfile(t *testing.T) {
	mockArchive := &MockArchive{}
	mockNotifications := &MockNotificationService{}
	src := &stubSource{name: "reddit"}

	service := newTestService(mockArchive, mockNotifications, src)

	result, err := service.RunProfile(context.Background(), "reddit", "ghost")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, persona.ErrNoRecords)

	// Nothing is archived or sent for an empty profile.
	mockArchive.AssertNumberOfCalls(t, "Store", 0)
	mockNotifications.AssertNumberOfCalls(t, "SendPersona", 0)

	var metrics Metrics
	assert.NoError(t, json.Unmarshal([]byte(service.GetMetrics()), &metrics))
	assert.Equal(t, 1, metrics.EmptyProfiles)
	assert.Equal(t, 0, metrics.PersonasGenerated)
}

func TestService_RunProfile_UnknownSource(t *testing.T) {
	mockArchive := &MockArchive{}
	mockNotifications := &MockNotificationService{}
	src := &stubSource{name: "reddit", records: testRecords()}

	service := newTestService(mockArchive, mockNotifications, src)

	_, err := service.RunProfile(context.Background(), "myspace", "kojied")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestService_RunWatchlist(t *testing.T) {
	mockArchive := &MockArchive{}
	mockNotifications := &MockNotificationService{}
	src := &stubSource{name: "reddit", records: testRecords()}

	cfg := testConfig()
	cfg.Watchlist = []string{"alice", "bob"}

	service := NewService(cfg, mockArchive, mockNotifications)
	service.sources = map[string]sources.Source{"reddit": src}

	mockArchive.On("Store", mock.Anything, mock.Anything).Return(nil)
	mockNotifications.On("SendPersona", mock.Anything, mock.Anything).Return(nil)

	err := service.RunWatchlist()
	assert.NoError(t, err)

	var metrics Metrics
	assert.NoError(t, json.Unmarshal([]byte(service.GetMetrics()), &metrics))
	assert.Equal(t, 2, metrics.PersonasGenerated)
	assert.False(t, metrics.LastRun.IsZero())
}

func TestService_RunWatchlist_Empty(t *testing.T) {
	mockArchive := &MockArchive{}
	mockNotifications := &MockNotificationService{}

	service := NewService(testConfig(), mockArchive, mockNotifications)

	assert.NoError(t, service.RunWatchlist())
	mockArchive.AssertNumberOfCalls(t, "Store", 0)
}
