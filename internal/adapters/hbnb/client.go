// internal/adapters/hbnb/client.go
package hbnb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the rental backend's REST API. Failed calls are never
// retried; each page view makes its calls once and renders what it got.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ---- Operations ----

// Login exchanges credentials for a bearer token. A success status without
// an access_token field is its own failure, distinct from a 401.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out map[string]any
	body := map[string]any{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return "", err
	}
	tok, _ := out["access_token"].(string)
	if tok == "" {
		return "", domain.ErrMissingToken
	}
	return tok, nil
}

// ListPlaces fetches all places. The bearer header is attached only when a
// token is present; listing is open to anonymous visitors.
func (c *Client) ListPlaces(ctx context.Context, token string) ([]map[string]any, error) {
	var out []map[string]any
	return out, c.do(ctx, http.MethodGet, "/places/", token, nil, &out)
}

func (c *Client) GetPlace(ctx context.Context, id, token string) (map[string]any, error) {
	var out map[string]any
	return out, c.do(ctx, http.MethodGet, "/places/"+url.PathEscape(id), token, nil, &out)
}

func (c *Client) ListReviews(ctx context.Context, placeID string) ([]map[string]any, error) {
	var out []map[string]any
	return out, c.do(ctx, http.MethodGet, "/places/"+url.PathEscape(placeID)+"/reviews/", "", nil, &out)
}

func (c *Client) PostReview(ctx context.Context, token, placeID, text string, rating int) error {
	body := map[string]any{"text": text, "place_id": placeID, "rating": rating}
	return c.do(ctx, http.MethodPost, "/reviews/", token, body, nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	return out, c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), "", nil, &out)
}

// ---- Internals ----

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hbnb-web/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hbnb", path, 0, time.Since(start))
		log.Debug().Str("method", method).Str("path", path).Dur("duration", time.Since(start)).Err(err).Msg("backend call failed")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hbnb", path, resp.StatusCode, time.Since(start))
	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.StatusError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// readMessage pulls a human-readable message out of an error body, accepting
// either a "message" or an "error" field. Unparseable bodies yield "".
func readMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return ""
	}
	if s, ok := m["message"].(string); ok && s != "" {
		return s
	}
	if s, ok := m["error"].(string); ok && s != "" {
		return s
	}
	return ""
}
