// Package catalog looks up game names and prices in the external catalog
// service.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 200
	maxRetryAfter = time.Second * 2
)

var ErrUnexpectedStatus = errors.New("unexpected catalog status")

type gameResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Client struct {
	url           string
	client        clients.HTTPClientI
	concurrency   int
	retryInterval time.Duration
	maxRetryAfter time.Duration
}

func New(url string, concurrency int, client clients.HTTPClientI) *Client {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Client{
		url:           url,
		client:        client,
		concurrency:   concurrency,
		retryInterval: retryInterval,
		maxRetryAfter: maxRetryAfter,
	}
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Lookup fetches one game. A game the catalog does not know yields a
// *domain.GameNotFoundError.
func (c *Client) Lookup(ctx context.Context, gameID int) (*domain.Game, error) {
	url := c.url + "/api/games/" + strconv.Itoa(gameID)
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		res, err := c.client.Get(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			zap.L().Warn("catalog request failed, retrying", zap.Int("game_id", gameID), zap.Int("attempt", attempt), zap.Error(err))
			if attempt < maxRetries {
				if err := c.wait(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
					return nil, err
				}
			}
			continue
		}

		switch {
		case res.StatusCode == http.StatusOK:
			return c.decode(gameID, res.Body)
		case res.StatusCode == http.StatusNotFound:
			return nil, &domain.GameNotFoundError{IDs: []int{gameID}}
		case res.StatusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
			if attempt < maxRetries {
				if err := c.wait(ctx, c.retryAfter(res.Header, attempt)); err != nil {
					return nil, err
				}
			}
		case res.StatusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
			if attempt < maxRetries {
				if err := c.wait(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
					return nil, err
				}
			}
		default:
			zap.L().Error("unexpected catalog status", zap.Int("status", res.StatusCode), zap.Int("game_id", gameID))
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
	}
	return nil, fmt.Errorf("catalog lookup of game %d failed after %d attempts: %w", gameID, maxRetries, lastErr)
}

func (c *Client) decode(gameID int, body []byte) (*domain.Game, error) {
	var resp gameResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}
	if resp.ID != 0 && resp.ID != gameID {
		return nil, fmt.Errorf("catalog game id mismatch: expected %d, got %d", gameID, resp.ID)
	}
	if resp.Price.IsNegative() {
		return nil, fmt.Errorf("catalog returned negative price for game %d", gameID)
	}
	return &domain.Game{ID: gameID, Name: resp.Name, Price: resp.Price.Round(2)}, nil
}

// retryAfter honours the catalog's Retry-After seconds up to maxRetryAfter,
// since the caller is an interactive request.
func (c *Client) retryAfter(h http.Header, attempt int) time.Duration {
	d := c.retryInterval * time.Duration(attempt)
	if v := h.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			d = time.Duration(seconds) * time.Second
		}
	}
	if d > c.maxRetryAfter {
		d = c.maxRetryAfter
	}
	zap.L().Warn("catalog rate limit, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", d))
	return d
}

// LookupMany fetches games concurrently and returns them in the order of
// ids. Every unknown id is reported in a single *domain.GameNotFoundError.
func (c *Client) LookupMany(ctx context.Context, ids []int) ([]domain.Game, error) {
	games := make([]domain.Game, len(ids))
	var (
		mu      sync.Mutex
		missing []int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			game, err := c.Lookup(ctx, id)
			var nf *domain.GameNotFoundError
			if errors.As(err, &nf) {
				mu.Lock()
				missing = append(missing, nf.IDs...)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return err
			}
			games[i] = *game
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, &domain.GameNotFoundError{IDs: missing}
	}
	return games, nil
}
