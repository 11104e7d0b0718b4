// Package figma is the thin client for the Figma REST API. It fetches and
// decodes; extraction and caching live above it, and retry policy is the
// caller's concern.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/figwing/figwing/models"
	"github.com/figwing/figwing/types"
)

// APIError is a failed upstream call, carrying the HTTP status so callers
// can distinguish missing files (404) from scope/plan limits (403).
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma api: %d %s", e.Status, e.Message)
}

// IsForbidden reports whether err is an upstream 403. The token synthesizer
// uses this to degrade gracefully when variables are plan-gated.
func IsForbidden(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusForbidden
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// Client is the upstream contract the extraction core depends on.
type Client interface {
	// GetFile fetches the full document tree of a design file.
	GetFile(ctx context.Context, fileID string) (*models.DesignDocument, error)

	// GetStyles fetches the published legacy styles of a file with their
	// visual values resolved from the styles' backing nodes.
	GetStyles(ctx context.Context, fileID string) ([]models.StyleRecord, error)

	// GetVariables fetches local variables and their collections. Fails
	// with a 403 APIError on plans without the variables endpoint.
	GetVariables(ctx context.Context, fileID string) (*models.VariablePayload, error)
}

// HTTPClient implements Client over api.figma.com with token auth and a
// client-side rate limiter.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	log     *logrus.Logger
}

// NewHTTPClient builds a client from config. A zero RequestsPerSec disables
// throttling.
func NewHTTPClient(cfg types.FigmaConfig, log *logrus.Logger) *HTTPClient {
	base := strings.TrimRight(cfg.APIBaseURL, "/")
	if base == "" {
		base = "https://api.figma.com"
	}
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}
	if log == nil {
		log = logrus.New()
	}
	return &HTTPClient{
		baseURL: base,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Figma-Token", c.token)

	c.log.WithField("path", path).Debug("figma request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Message: upstreamMessage(body, resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// upstreamMessage extracts the API's error text, falling back to the HTTP
// status line.
func upstreamMessage(body []byte, fallback string) string {
	var payload struct {
		Err     string `json:"err"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Err != "" {
			return payload.Err
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}

func (c *HTTPClient) GetFile(ctx context.Context, fileID string) (*models.DesignDocument, error) {
	var doc models.DesignDocument
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(fileID), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// styleMetadata is the styles listing entry; values live on the backing node.
type styleMetadata struct {
	Key         string `json:"key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *HTTPClient) GetStyles(ctx context.Context, fileID string) ([]models.StyleRecord, error) {
	var listing struct {
		Meta struct {
			Styles []styleMetadata `json:"styles"`
		} `json:"meta"`
	}
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(fileID)+"/styles", &listing); err != nil {
		return nil, err
	}
	if len(listing.Meta.Styles) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listing.Meta.Styles))
	for _, s := range listing.Meta.Styles {
		ids = append(ids, s.NodeID)
	}

	var nodes struct {
		Nodes map[string]struct {
			Document *models.DesignNode `json:"document"`
		} `json:"nodes"`
	}
	path := "/v1/files/" + url.PathEscape(fileID) + "/nodes?ids=" + url.QueryEscape(strings.Join(ids, ","))
	if err := c.get(ctx, path, &nodes); err != nil {
		return nil, err
	}

	records := make([]models.StyleRecord, 0, len(listing.Meta.Styles))
	for _, meta := range listing.Meta.Styles {
		record := models.StyleRecord{
			ID:          meta.Key,
			Name:        meta.Name,
			StyleType:   models.StyleType(meta.StyleType),
			Description: meta.Description,
		}
		if node, ok := nodes.Nodes[meta.NodeID]; ok && node.Document != nil {
			record.Fills = node.Document.Fills
			record.TypeStyle = node.Document.Style
			record.Effects = node.Document.Effects
		}
		records = append(records, record)
	}
	return records, nil
}

func (c *HTTPClient) GetVariables(ctx context.Context, fileID string) (*models.VariablePayload, error) {
	var payload struct {
		Meta struct {
			Variables           map[string]models.Variable           `json:"variables"`
			VariableCollections map[string]models.VariableCollection `json:"variableCollections"`
		} `json:"meta"`
	}
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(fileID)+"/variables/local", &payload); err != nil {
		return nil, err
	}

	result := &models.VariablePayload{}
	for id, v := range payload.Meta.Variables {
		if v.ID == "" {
			v.ID = id
		}
		result.Variables = append(result.Variables, v)
	}
	for id, col := range payload.Meta.VariableCollections {
		if col.ID == "" {
			col.ID = id
		}
		result.Collections = append(result.Collections, col)
	}
	return result, nil
}
