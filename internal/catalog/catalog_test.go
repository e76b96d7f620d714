package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/pkg/clients"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(srv.URL, 4, clients.NewHTTPClient())
	c.retryInterval = time.Millisecond
	return c
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected *domain.Game
		errIs    error
		wantErr  bool
	}{
		{
			name: "Found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/games/7", r.URL.Path)
				_, _ = w.Write([]byte(`{"id":7,"name":"Hades","price":"24.99"}`))
			},
			expected: &domain.Game{ID: 7, Name: "Hades", Price: decimal.RequireFromString("24.99")},
		},
		{
			name: "Numeric price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":7,"name":"Hades","price":19.5}`))
			},
			expected: &domain.Game{ID: 7, Name: "Hades", Price: decimal.RequireFromString("19.5")},
		},
		{
			name: "Not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			errIs: domain.ErrGameNotFound,
		},
		{
			name: "Bad request is not retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			errIs: ErrUnexpectedStatus,
		},
		{
			name: "Malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
			wantErr: true,
		},
		{
			name: "Id mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":8,"name":"Other","price":"1"}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, tt.handler)

			game, err := c.Lookup(context.Background(), 7)
			switch {
			case tt.errIs != nil:
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, game)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected.Name, game.Name)
				assert.True(t, tt.expected.Price.Equal(game.Price))
			}
		})
	}
}

func TestLookupRetriesServerErrors(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"name":"Celeste","price":"19.99"}`))
	})

	game, err := c.Lookup(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Celeste", game.Name)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLookupGivesUp(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Lookup(context.Background(), 1)

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(maxRetries), atomic.LoadInt32(&calls))
}

func TestLookupCapsRetryAfter(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "3600")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"name":"Hades","price":"24.99"}`))
	})
	c.maxRetryAfter = 10 * time.Millisecond

	start := time.Now()
	game, err := c.Lookup(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Hades", game.Name)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryAfter(t *testing.T) {
	c := New("http://catalog", 1, clients.NewHTTPClient())
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{"No header falls back to backoff", "", 2 * retryInterval},
		{"Seconds are honoured", "1", time.Second},
		{"Long waits are capped", "3600", maxRetryAfter},
		{"Negative is ignored", "-5", 2 * retryInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.want, c.retryAfter(h, 2))
		})
	}
}

func TestLookupMany(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/1"):
			_, _ = w.Write([]byte(`{"id":1,"name":"Hades","price":"10"}`))
		case strings.HasSuffix(r.URL.Path, "/2"):
			_, _ = w.Write([]byte(`{"id":2,"name":"Celeste","price":"20"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("Keeps input order", func(t *testing.T) {
		games, err := c.LookupMany(context.Background(), []int{2, 1})

		require.NoError(t, err)
		assert.Equal(t, "Celeste", games[0].Name)
		assert.Equal(t, "Hades", games[1].Name)
	})

	t.Run("Reports all missing ids", func(t *testing.T) {
		_, err := c.LookupMany(context.Background(), []int{9, 1, 5})

		var nf *domain.GameNotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, []int{5, 9}, nf.IDs)
	})
}
