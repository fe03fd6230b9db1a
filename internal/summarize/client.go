package summarize

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var completionAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "summary_llm_attempts_total",
		Help: "Total number of attempts against the summarization service",
	},
	[]string{"outcome"}, // outcome: ok, error
)

// FailureSentinel is the user-facing result when every attempt at the
// remote service fails. Exhausted retries surface as this string, never as
// an error reaching the caller.
const FailureSentinel = "summary generation failed after retries"

// Options are the generation parameters forwarded to the provider.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Provider is the remote completion service. Implementations report
// transient failures as errors; the client owns the retry policy.
type Provider interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

const (
	defaultAttempts   = 3
	defaultRetryDelay = 2 * time.Second
)

// Client wraps a Provider with bounded sequential retries and an overall
// deadline, so a stalled service cannot block the pipeline indefinitely.
type Client struct {
	provider Provider
	attempts int
	delay    time.Duration
	timeout  time.Duration
	opts     Options
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAttempts sets the retry bound.
func WithAttempts(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithRetryDelay sets the fixed inter-attempt delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.delay = d }
}

// WithTimeout sets the overall deadline across all attempts (0 = none).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithOptions sets the generation parameters.
func WithOptions(opts Options) ClientOption {
	return func(c *Client) { c.opts = opts }
}

// NewClient creates a retrying summarization client around provider.
func NewClient(provider Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		attempts: defaultAttempts,
		delay:    defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summarize builds the prompt for req and issues it, retrying transient
// failures up to the configured bound with a fixed delay between attempts.
// The returned string is either the generated summary or FailureSentinel.
func (c *Client) Summarize(ctx context.Context, req Request) string {
	prompt := BuildPrompt(req)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	for attempt := 1; attempt <= c.attempts; attempt++ {
		summary, err := c.provider.Complete(ctx, prompt, c.opts)
		if err == nil {
			completionAttempts.WithLabelValues("ok").Inc()
			return strings.TrimSpace(summary)
		}
		completionAttempts.WithLabelValues("error").Inc()
		slog.Warn("summary request failed", "attempt", attempt, "attempts", c.attempts, "error", err)

		if attempt == c.attempts {
			break
		}
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			slog.Error("summary generation deadline exceeded", "error", ctx.Err())
			return FailureSentinel
		}
	}
	slog.Error("summary generation exhausted retries", "attempts", c.attempts)
	return FailureSentinel
}
