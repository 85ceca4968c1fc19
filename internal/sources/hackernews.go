package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// HackerNewsSource fetches a user's recent stories and comments from the
// Hacker News Firebase API.
type HackerNewsSource struct {
	client *resty.Client
}

// Ensure HackerNewsSource implements Source
var _ Source = (*HackerNewsSource)(nil)

type hackerNewsUser struct {
	ID        string `json:"id"`
	Submitted []int  `json:"submitted"`
}

type hackerNewsItem struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	By      string `json:"by"`
	Time    int64  `json:"time"`
	Text    string `json:"text"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
	Deleted bool   `json:"deleted"`
	Dead    bool   `json:"dead"`
}

// NewHackerNewsSource creates a new Hacker News source
func NewHackerNewsSource() *HackerNewsSource {
	return &HackerNewsSource{
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "PersonaBot/1.0"),
	}
}

func (h *HackerNewsSource) GetName() string {
	return "hackernews"
}

func (h *HackerNewsSource) IsEnabled() bool {
	return true // Hacker News API doesn't require authentication
}

// FetchRecords returns up to limit of the user's most recent items. The
// submitted list is already newest-first.
func (h *HackerNewsSource) FetchRecords(ctx context.Context, username string, limit int) ([]models.Record, error) {
	user, err := h.getUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HN user %s: %w", username, err)
	}

	itemIDs := user.Submitted
	if len(itemIDs) > limit {
		itemIDs = itemIDs[:limit]
	}

	var records []models.Record
	for _, itemID := range itemIDs {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}

		item, err := h.getItem(ctx, itemID)
		if err != nil {
			logrus.Errorf("Failed to fetch HN item %d: %v", itemID, err)
			continue
		}

		record, ok := h.toRecord(item)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	logrus.Infof("Fetched %d records for HN user %s", len(records), username)
	return records, nil
}

func (h *HackerNewsSource) getUser(ctx context.Context, username string) (*hackerNewsUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("https://hacker-news.firebaseio.com/v0/user/%s.json", username))

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("hacker news API returned status %d", resp.StatusCode())
	}

	var user hackerNewsUser
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("hacker news user %s not found", username)
	}

	return &user, nil
}

func (h *HackerNewsSource) getItem(ctx context.Context, itemID int) (*hackerNewsItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("https://hacker-news.firebaseio.com/v0/item/%d.json", itemID))

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("hacker news API returned status %d", resp.StatusCode())
	}

	var item hackerNewsItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (h *HackerNewsSource) toRecord(item *hackerNewsItem) (models.Record, bool) {
	if item.Deleted || item.Dead {
		return models.Record{}, false
	}

	var record models.Record
	switch item.Type {
	case "story":
		record = models.Record{
			Title: item.Title,
			Body:  item.Text,
			Kind:  models.KindPost,
		}
	case "comment":
		record = models.Record{
			Body: item.Text,
			Kind: models.KindComment,
		}
	default:
		return models.Record{}, false
	}

	if record.Body == "" && record.Title == "" {
		return models.Record{}, false
	}

	record.Score = item.Score
	record.CreatedAt = time.Unix(item.Time, 0).UTC()
	record.Permalink = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", item.ID)

	return record, true
}
