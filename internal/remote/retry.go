package remote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig configures retry behavior for transient errors.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterFraction float64 // 0.0 to 1.0
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		JitterFraction: 0.25,
	}
}

// RetryClient wraps a Client with automatic retry on transient errors.
// Requests are fully buffered JSON, so replaying them is safe.
type RetryClient struct {
	inner  Client
	config *RetryConfig
}

// NewRetryClient creates a RetryClient that wraps the given Client.
func NewRetryClient(inner Client, cfg *RetryConfig) *RetryClient {
	if cfg == nil {
		cfg = DefaultRetryConfig()
	}
	return &RetryClient{inner: inner, config: cfg}
}

// isTransient returns true for errors that are worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status >= 500 || re.Status == http.StatusTooManyRequests
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true // network errors are transient
}

// backoff computes the delay for the given attempt with jitter.
func (rc *RetryClient) backoff(attempt int) time.Duration {
	base := float64(rc.config.InitialBackoff) * math.Pow(2, float64(attempt))
	if base > float64(rc.config.MaxBackoff) {
		base = float64(rc.config.MaxBackoff)
	}
	jitter := base * rc.config.JitterFraction * (rand.Float64()*2 - 1) // +/- jitter
	d := time.Duration(base + jitter)
	if d < 0 {
		d = 0
	}
	return d
}

// sleep waits for the given duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retry executes fn with retry logic. Only retries transient errors.
func (rc *RetryClient) retry(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= rc.config.MaxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
		if attempt < rc.config.MaxRetries {
			d := rc.backoff(attempt)
			if err := sleep(ctx, d); err != nil {
				return fmt.Errorf("%s: %w (retry cancelled)", operation, lastErr)
			}
		}
	}
	return fmt.Errorf("%s: %w (after %d retries)", operation, lastErr, rc.config.MaxRetries)
}

// --- Delegate all Client methods through retry logic ---

func (rc *RetryClient) MaterialCompliance(ctx context.Context, req *MaterialComplianceRequest) (resp *MaterialComplianceResponse, err error) {
	err = rc.retry(ctx, "material compliance", func() error {
		resp, err = rc.inner.MaterialCompliance(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) MaterialImpactedSubstances(ctx context.Context, req *MaterialImpactedSubstancesRequest) (resp *MaterialImpactedSubstancesResponse, err error) {
	err = rc.retry(ctx, "material impacted substances", func() error {
		resp, err = rc.inner.MaterialImpactedSubstances(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) PartCompliance(ctx context.Context, req *PartComplianceRequest) (resp *PartComplianceResponse, err error) {
	err = rc.retry(ctx, "part compliance", func() error {
		resp, err = rc.inner.PartCompliance(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) PartImpactedSubstances(ctx context.Context, req *PartImpactedSubstancesRequest) (resp *PartImpactedSubstancesResponse, err error) {
	err = rc.retry(ctx, "part impacted substances", func() error {
		resp, err = rc.inner.PartImpactedSubstances(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) SpecificationCompliance(ctx context.Context, req *SpecificationComplianceRequest) (resp *SpecificationComplianceResponse, err error) {
	err = rc.retry(ctx, "specification compliance", func() error {
		resp, err = rc.inner.SpecificationCompliance(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) SpecificationImpactedSubstances(ctx context.Context, req *SpecificationImpactedSubstancesRequest) (resp *SpecificationImpactedSubstancesResponse, err error) {
	err = rc.retry(ctx, "specification impacted substances", func() error {
		resp, err = rc.inner.SpecificationImpactedSubstances(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) SubstanceCompliance(ctx context.Context, req *SubstanceComplianceRequest) (resp *SubstanceComplianceResponse, err error) {
	err = rc.retry(ctx, "substance compliance", func() error {
		resp, err = rc.inner.SubstanceCompliance(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) BomCompliance(ctx context.Context, req *BomComplianceRequest) (resp *BomComplianceResponse, err error) {
	err = rc.retry(ctx, "bom compliance", func() error {
		resp, err = rc.inner.BomCompliance(ctx, req)
		return err
	})
	return
}

func (rc *RetryClient) BomImpactedSubstances(ctx context.Context, req *BomImpactedSubstancesRequest) (resp *BomImpactedSubstancesResponse, err error) {
	err = rc.retry(ctx, "bom impacted substances", func() error {
		resp, err = rc.inner.BomImpactedSubstances(ctx, req)
		return err
	})
	return
}
