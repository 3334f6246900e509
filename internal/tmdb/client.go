package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movia-backend/internal/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ContentType selects the TMDB details endpoint.
type ContentType string

const (
	ContentMovie  ContentType = "movie"
	ContentSeries ContentType = "tv"
)

// Fetcher retrieves one catalog item by its TMDB id.
type Fetcher interface {
	Fetch(ctx context.Context, contentType ContentType, id int) (Payload, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	retry      RetryPolicy
	logger     *logrus.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(cfg config.TMDBConfig, opts ...Option) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var retry RetryPolicy = NoRetry{}
	if cfg.RetryAttempts > 0 {
		retry = FixedRetry{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay}
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: timeout},
		retry:      retry,
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues GET {base}/{movie|tv}/{id} and decodes the JSON body. Only a
// 200 response is decoded; a 404 error matches ErrNotFound.
func (c *Client) Fetch(ctx context.Context, contentType ContentType, id int) (Payload, error) {
	for attempt := 1; ; attempt++ {
		p, err := c.fetchOnce(ctx, contentType, id)
		if err == nil {
			return p, nil
		}

		delay, again := c.retry.Backoff(attempt, err)
		if !again {
			return nil, err
		}

		c.logger.WithError(err).WithFields(logrus.Fields{
			"content_type": contentType,
			"tmdb_id":      id,
			"attempt":      attempt,
			"delay":        delay,
		}).Warn("Retrying TMDB fetch")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.Wrap(ctx.Err(), "TMDB fetch cancelled")
		case <-timer.C:
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, contentType ContentType, id int) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(contentType, id), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s %d from TMDB", contentType, id)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.WithMessagef(&StatusError{StatusCode: resp.StatusCode, Body: string(body)},
			"%s %d", contentType, id)
	}

	p, err := DecodePayload(resp.Body)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s %d", contentType, id)
	}
	return p, nil
}

func (c *Client) endpoint(contentType ContentType, id int) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)
	return fmt.Sprintf("%s/%s/%d?%s", c.baseURL, contentType, id, q.Encode())
}
