// Package api is the thin request layer between the UI and the mood
// service. Every operation is a single request/response call; results and
// failures are surfaced verbatim to the caller. No retries, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	apperrors "github.com/pvlkuz/moodtrack-cli/internal/errors"
	"github.com/pvlkuz/moodtrack-cli/internal/logger"
	"github.com/pvlkuz/moodtrack-cli/internal/models"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. Implemented by the session store.
type TokenSource interface {
	Token() string
}

// Client talks to the mood service over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient builds a client for the service at baseURL. tokens may be nil
// for a client that only ever calls Login.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
	}
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the identifier for a bearer token.
func (c *Client) Login(ctx context.Context, email string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListRange fetches all records with from ≤ date ≤ to, both inclusive,
// sorted ascending by date. The server does not promise an order.
func (c *Client) ListRange(ctx context.Context, from, to time.Time) ([]models.Record, error) {
	path := fmt.Sprintf("/mood?from=%s&to=%s",
		url.QueryEscape(from.Format(constants.DateFormat)),
		url.QueryEscape(to.Format(constants.DateFormat)))

	var records []models.Record
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date.Time)
	})
	return records, nil
}

type moodRequest struct {
	Icon    string `json:"icon"`
	Comment string `json:"comment"`
	Date    string `json:"date,omitempty"`
}

// Create logs a mood for the given date, or for "today" server-side when
// date is nil.
func (c *Client) Create(ctx context.Context, icon, comment string, date *time.Time) (models.Record, error) {
	req := moodRequest{Icon: icon, Comment: comment}
	if date != nil {
		req.Date = date.Format(constants.DateFormat)
	}
	var rec models.Record
	if err := c.do(ctx, http.MethodPost, "/mood", req, &rec); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

// Update replaces an existing record's icon, comment and date. Some server
// versions answer 204 instead of echoing the record, so an absent body is
// filled in from the request.
func (c *Client) Update(ctx context.Context, id, icon, comment string, date time.Time) (models.Record, error) {
	req := moodRequest{Icon: icon, Comment: comment, Date: date.Format(constants.DateFormat)}
	var rec models.Record
	if err := c.do(ctx, http.MethodPut, "/mood/"+url.PathEscape(id), req, &rec); err != nil {
		return models.Record{}, err
	}
	if rec.ID == "" {
		rec = models.Record{ID: id, Date: models.NewDate(date), Icon: icon, Comment: comment}
	}
	return rec, nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/mood/"+url.PathEscape(id), nil, nil)
}

type telegramRequest struct {
	ChatID int64 `json:"chat_id"`
}

// RegisterTelegram links a Telegram chat for notifications.
func (c *Client) RegisterTelegram(ctx context.Context, chatID int64) error {
	return c.do(ctx, http.MethodPost, "/user/telegram/register", telegramRequest{ChatID: chatID}, nil)
}

// do issues one request. A transport failure becomes a NetworkError (and
// is logged); a non-2xx response becomes an APIError carrying the body
// text. The response body is decoded into out when out is non-nil and the
// body is non-empty.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", "method", method, "path", path, "error", err)
		return &apperrors.NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		data, _ := io.ReadAll(res.Body)
		return &apperrors.APIError{
			Status:  res.StatusCode,
			Message: strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &apperrors.NetworkError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
