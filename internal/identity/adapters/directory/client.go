// Package directory is the HTTP client for the corporate user directory.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bulwark/internal/identity/metrics"
	"bulwark/internal/identity/models"
	"bulwark/pkg/platform/circuit"
	"bulwark/pkg/platform/sentinel"
)

type userDTO struct {
	AccountID string `json:"accountid"`
	Name      string `json:"name"`
	DeptName  string `json:"dept_name"`
	Email     string `json:"email"`
}

type usersResponse struct {
	Users []userDTO `json:"users"`
}

type employmentResponse struct {
	Employed bool `json:"is_staff"`
}

// Client calls the directory behind a rate limiter and a circuit breaker.
// While the breaker is open every call fails fast with sentinel.ErrUnavailable.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func WithLimiter(l *rate.Limiter) Option {
	return func(cl *Client) {
		cl.limiter = l
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(cl *Client) {
		cl.breaker = b
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(cl *Client) {
		cl.metrics = m
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 0),
		breaker: circuit.New("directory"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ByAccountIDs(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	if len(ids) == 0 {
		return map[string]models.Profile{}, nil
	}
	var resp usersResponse
	q := url.Values{"accountids": {strings.Join(ids, ",")}}
	if err := c.get(ctx, "by_account_ids", "/users?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	out := make(map[string]models.Profile, len(resp.Users))
	for _, u := range resp.Users {
		out[u.AccountID] = toProfile(u)
	}
	return out, nil
}

// ByEmails accepts full emails or prefixes; results are keyed by the input form.
func (c *Client) ByEmails(ctx context.Context, emails []string) (map[string]models.Profile, error) {
	if len(emails) == 0 {
		return map[string]models.Profile{}, nil
	}
	var resp usersResponse
	q := url.Values{"emails": {strings.Join(emails, ",")}}
	if err := c.get(ctx, "by_emails", "/users?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	byPrefix := make(map[string]models.Profile, len(resp.Users))
	for _, u := range resp.Users {
		p := toProfile(u)
		byPrefix[p.EmailPrefix()] = p
	}
	out := make(map[string]models.Profile, len(emails))
	for _, e := range emails {
		key := e
		if i := strings.Index(e, "@"); i >= 0 {
			key = e[:i]
		}
		if p, ok := byPrefix[key]; ok {
			out[e] = p
		}
	}
	return out, nil
}

func (c *Client) IsEmployed(ctx context.Context, accountID string) (bool, error) {
	var resp employmentResponse
	err := c.get(ctx, "is_employed", "/users/"+url.PathEscape(accountID)+"/employment", &resp)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return resp.Employed, nil
}

func (c *Client) get(ctx context.Context, op, path string, dst any) error {
	if !c.breaker.Allow() {
		return fmt.Errorf("directory %s: %w", op, sentinel.ErrUnavailable)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("directory %s: wait for rate limiter: %w", op, err)
	}

	err := c.do(ctx, path, dst)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		c.metrics.IncDirectoryError(op)
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.metrics.SetBreakerOpen(true)
			c.logger.WarnContext(ctx, "directory circuit opened", "op", op, "error", err)
		}
		return fmt.Errorf("directory %s: %w", op, err)
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.metrics.SetBreakerOpen(false)
		c.logger.InfoContext(ctx, "directory circuit closed")
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNotFound {
		return sentinel.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toProfile(u userDTO) models.Profile {
	return models.Profile{AccountID: u.AccountID, Name: u.Name, DeptName: u.DeptName, Email: u.Email}
}
