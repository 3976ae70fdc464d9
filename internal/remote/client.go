package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// Client defines the contract for communicating with the BoM Analytics
// service. One method per (item type, operation) pair; substances support
// compliance only since they carry no legislations to resolve against.
type Client interface {
	MaterialCompliance(ctx context.Context, req *MaterialComplianceRequest) (*MaterialComplianceResponse, error)
	MaterialImpactedSubstances(ctx context.Context, req *MaterialImpactedSubstancesRequest) (*MaterialImpactedSubstancesResponse, error)

	PartCompliance(ctx context.Context, req *PartComplianceRequest) (*PartComplianceResponse, error)
	PartImpactedSubstances(ctx context.Context, req *PartImpactedSubstancesRequest) (*PartImpactedSubstancesResponse, error)

	SpecificationCompliance(ctx context.Context, req *SpecificationComplianceRequest) (*SpecificationComplianceResponse, error)
	SpecificationImpactedSubstances(ctx context.Context, req *SpecificationImpactedSubstancesRequest) (*SpecificationImpactedSubstancesResponse, error)

	SubstanceCompliance(ctx context.Context, req *SubstanceComplianceRequest) (*SubstanceComplianceResponse, error)

	BomCompliance(ctx context.Context, req *BomComplianceRequest) (*BomComplianceResponse, error)
	BomImpactedSubstances(ctx context.Context, req *BomImpactedSubstancesRequest) (*BomImpactedSubstancesResponse, error)
}

// Connection binds a Client to the database it queries. Query builders take a
// Connection at execution time; the Connection itself holds no per-query
// state, so it can be shared between builders.
type Connection struct {
	Client Client
	DBKey  string
	Config *QueryConfig
}

// NewConnection creates a Connection for the given client and database key.
func NewConnection(client Client, dbkey string) *Connection {
	return &Connection{Client: client, DBKey: dbkey}
}

// WithQueryConfig sets table-name overrides applied to every request.
func (c *Connection) WithQueryConfig(cfg *QueryConfig) *Connection {
	c.Config = cfg
	return c
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP-based client for the service layer at
// baseURL, authenticating with basic credentials. ratePerSec bounds the
// outgoing request rate; zero or negative disables the limiter.
func NewHTTPClient(baseURL, username, password string, ratePerSec float64) *HTTPClient {
	var limiter *rate.Limiter
	if ratePerSec > 0 {
		burst := int(ratePerSec)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), burst)
	}
	return &HTTPClient{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: &http.Client{},
		limiter:    limiter,
		logger:     slog.Default(),
	}
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + "/BomAnalytics/v1.svc" + path
}

func (c *HTTPClient) doJSON(ctx context.Context, url string, reqBody, respBody interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("bomanalytics request", "url", url, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// MaterialCompliance evaluates compliance for a batch of material references.
func (c *HTTPClient) MaterialCompliance(ctx context.Context, req *MaterialComplianceRequest) (*MaterialComplianceResponse, error) {
	var resp MaterialComplianceResponse
	if err := c.doJSON(ctx, c.url("/compliance/materials"), req, &resp); err != nil {
		return nil, fmt.Errorf("material compliance: %w", err)
	}
	return &resp, nil
}

// MaterialImpactedSubstances resolves impacted substances for a batch of
// material references.
func (c *HTTPClient) MaterialImpactedSubstances(ctx context.Context, req *MaterialImpactedSubstancesRequest) (*MaterialImpactedSubstancesResponse, error) {
	var resp MaterialImpactedSubstancesResponse
	if err := c.doJSON(ctx, c.url("/impactedsubstances/materials"), req, &resp); err != nil {
		return nil, fmt.Errorf("material impacted substances: %w", err)
	}
	return &resp, nil
}

// PartCompliance evaluates compliance for a batch of part references.
func (c *HTTPClient) PartCompliance(ctx context.Context, req *PartComplianceRequest) (*PartComplianceResponse, error) {
	var resp PartComplianceResponse
	if err := c.doJSON(ctx, c.url("/compliance/parts"), req, &resp); err != nil {
		return nil, fmt.Errorf("part compliance: %w", err)
	}
	return &resp, nil
}

// PartImpactedSubstances resolves impacted substances for a batch of part
// references.
func (c *HTTPClient) PartImpactedSubstances(ctx context.Context, req *PartImpactedSubstancesRequest) (*PartImpactedSubstancesResponse, error) {
	var resp PartImpactedSubstancesResponse
	if err := c.doJSON(ctx, c.url("/impactedsubstances/parts"), req, &resp); err != nil {
		return nil, fmt.Errorf("part impacted substances: %w", err)
	}
	return &resp, nil
}

// SpecificationCompliance evaluates compliance for a batch of specification
// references.
func (c *HTTPClient) SpecificationCompliance(ctx context.Context, req *SpecificationComplianceRequest) (*SpecificationComplianceResponse, error) {
	var resp SpecificationComplianceResponse
	if err := c.doJSON(ctx, c.url("/compliance/specifications"), req, &resp); err != nil {
		return nil, fmt.Errorf("specification compliance: %w", err)
	}
	return &resp, nil
}

// SpecificationImpactedSubstances resolves impacted substances for a batch of
// specification references.
func (c *HTTPClient) SpecificationImpactedSubstances(ctx context.Context, req *SpecificationImpactedSubstancesRequest) (*SpecificationImpactedSubstancesResponse, error) {
	var resp SpecificationImpactedSubstancesResponse
	if err := c.doJSON(ctx, c.url("/impactedsubstances/specifications"), req, &resp); err != nil {
		return nil, fmt.Errorf("specification impacted substances: %w", err)
	}
	return &resp, nil
}

// SubstanceCompliance evaluates compliance for a batch of substance
// references with amounts.
func (c *HTTPClient) SubstanceCompliance(ctx context.Context, req *SubstanceComplianceRequest) (*SubstanceComplianceResponse, error) {
	var resp SubstanceComplianceResponse
	if err := c.doJSON(ctx, c.url("/compliance/substances"), req, &resp); err != nil {
		return nil, fmt.Errorf("substance compliance: %w", err)
	}
	return &resp, nil
}

// BomCompliance evaluates compliance for a single XML BoM document.
func (c *HTTPClient) BomCompliance(ctx context.Context, req *BomComplianceRequest) (*BomComplianceResponse, error) {
	var resp BomComplianceResponse
	if err := c.doJSON(ctx, c.url("/compliance/bom1711"), req, &resp); err != nil {
		return nil, fmt.Errorf("bom compliance: %w", err)
	}
	return &resp, nil
}

// BomImpactedSubstances resolves impacted substances for a single XML BoM
// document.
func (c *HTTPClient) BomImpactedSubstances(ctx context.Context, req *BomImpactedSubstancesRequest) (*BomImpactedSubstancesResponse, error) {
	var resp BomImpactedSubstancesResponse
	if err := c.doJSON(ctx, c.url("/impactedsubstances/bom1711"), req, &resp); err != nil {
		return nil, fmt.Errorf("bom impacted substances: %w", err)
	}
	return &resp, nil
}

// RemoteError represents a structured error from the service.
type RemoteError struct {
	Code    string
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (%d): %s: %s", e.Status, e.Code, e.Message)
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return &RemoteError{
			Code:    "unknown",
			Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}
	return &RemoteError{
		Code:    errResp.Error,
		Message: errResp.Message,
		Status:  resp.StatusCode,
	}
}
