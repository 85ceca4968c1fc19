package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const redditUserAgent = "PersonaBot/1.0 (by /u/research_bot)"

// RedditSource fetches a user's submitted posts and comments from the public
// Reddit JSON API. No credentials are needed; requests are rate limited to
// stay within Reddit's unauthenticated quota.
type RedditSource struct {
	client  *resty.Client
	limiter *rate.Limiter
	cache   *gocache.Cache
}

// Ensure RedditSource implements Source
var _ Source = (*RedditSource)(nil)

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditThing `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditThing struct {
	Title     string  `json:"title"`
	Selftext  string  `json:"selftext"`
	Body      string  `json:"body"`
	LinkTitle string  `json:"link_title"`
	Subreddit string  `json:"subreddit"`
	Score     int     `json:"score"`
	Created   float64 `json:"created_utc"`
	Permalink string  `json:"permalink"`
}

// NewRedditSource creates a new Reddit source. requestsPerSecond bounds the
// API call rate; cacheTTL controls how long a fetched timeline is reused
// before hitting the API again for the same user.
func NewRedditSource(requestsPerSecond float64, cacheTTL time.Duration) *RedditSource {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 0.5
	}
	return &RedditSource{
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", redditUserAgent),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (r *RedditSource) GetName() string {
	return "reddit"
}

func (r *RedditSource) IsEnabled() bool {
	return true // the public JSON API requires no credentials
}

// FetchRecords returns the user's posts and comments, newest first, with
// deleted and removed content filtered out.
func (r *RedditSource) FetchRecords(ctx context.Context, username string, limit int) ([]models.Record, error) {
	cacheKey := fmt.Sprintf("%s:%d", username, limit)
	if cached, found := r.cache.Get(cacheKey); found {
		logrus.Debugf("Using cached records for u/%s", username)
		return cached.([]models.Record), nil
	}

	posts, err := r.fetchListing(ctx, username, "submitted", models.KindPost, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts for u/%s: %w", username, err)
	}

	comments, err := r.fetchListing(ctx, username, "comments", models.KindComment, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for u/%s: %w", username, err)
	}

	records := append(posts, comments...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	logrus.Infof("Fetched %d records for u/%s (%d posts, %d comments)",
		len(records), username, len(posts), len(comments))

	r.cache.Set(cacheKey, records, gocache.DefaultExpiration)
	return records, nil
}

func (r *RedditSource) fetchListing(ctx context.Context, username, feed string, kind models.RecordKind, limit int) ([]models.Record, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	listingURL := fmt.Sprintf("https://www.reddit.com/user/%s/%s.json?limit=%d",
		url.PathEscape(username), feed, limit)

	logrus.Debugf("Fetching %s from: %s", feed, listingURL)
	resp, err := r.client.R().
		SetContext(ctx).
		Get(listingURL)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("reddit API returned status %d", resp.StatusCode())
	}

	var listing redditListing
	if err := json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("failed to parse reddit listing: %w", err)
	}

	var records []models.Record
	for _, child := range listing.Data.Children {
		thing := child.Data

		var title, body string
		if kind == models.KindPost {
			title = thing.Title
			body = thing.Selftext
		} else {
			linkTitle := thing.LinkTitle
			if linkTitle == "" {
				linkTitle = "Unknown"
			}
			title = "Comment on: " + linkTitle
			body = thing.Body
		}

		if isRemovedContent(body) {
			continue
		}

		records = append(records, models.Record{
			Title:     title,
			Body:      body,
			Subreddit: thing.Subreddit,
			Score:     thing.Score,
			CreatedAt: time.Unix(int64(thing.Created), 0).UTC(),
			Kind:      kind,
			Permalink: "https://www.reddit.com" + thing.Permalink,
		})
	}

	return records, nil
}

// isRemovedContent reports whether a body is one of the sentinel markers
// Reddit substitutes for deleted or moderated content.
func isRemovedContent(body string) bool {
	switch body {
	case "", "[deleted]", "[removed]":
		return true
	}
	return false
}

// ExtractUsername parses a Reddit profile URL like
// https://www.reddit.com/user/<name>/ and returns the username.
func ExtractUsername(profileURL string) (string, error) {
	parsed, err := url.Parse(profileURL)
	if err != nil {
		return "", fmt.Errorf("invalid reddit profile URL %q: %w", profileURL, err)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) >= 2 && (parts[0] == "user" || parts[0] == "u") && parts[1] != "" {
		return parts[1], nil
	}

	return "", fmt.Errorf("invalid reddit profile URL: %s", profileURL)
}
