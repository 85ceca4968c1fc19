package sources

import (
	"context"

	"github.com/redditpersona/persona-bot/internal/models"
)

// Source interface defines the contract for user-timeline data sources
type Source interface {
	GetName() string
	FetchRecords(ctx context.Context, username string, limit int) ([]models.Record, error)
	IsEnabled() bool
}
