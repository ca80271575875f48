package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

var (
	// ErrProductNotFound indicates the catalog has no product with the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrCatalogDisabled is returned when no catalog address is configured.
	ErrCatalogDisabled = errors.New("catalog disabled")
)

// Client exposes read access to the shop catalog.
type Client interface {
	Product(ctx context.Context, id string) (*model.ProductRef, error)
}

// HTTPClient implements Client via the shop HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the shop API envelope.
type response struct {
	Success bool            `json:"success"`
	Data    productResponse `json:"data"`
}

type productResponse struct {
	ID     string   `json:"_id"`
	Title  string   `json:"title"`
	Image  string   `json:"image,omitempty"`
	Images []string `json:"images,omitempty"`
}

// NewHTTPClient creates HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

// Product fetches a single product by id.
func (c *HTTPClient) Product(ctx context.Context, id string) (*model.ProductRef, error) {
	endpoint := *c.baseURL
	endpoint.RawPath = strings.TrimSuffix(endpoint.EscapedPath(), "/") + "/api/products/" + url.PathEscape(id)
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/api/products/" + id

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		if !data.Success {
			return nil, ErrProductNotFound
		}
		return toProductRef(id, data.Data), nil
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

func toProductRef(id string, p productResponse) *model.ProductRef {
	ref := &model.ProductRef{ID: p.ID, Title: p.Title, Image: p.Image}
	if ref.ID == "" {
		ref.ID = id
	}
	if ref.Image == "" && len(p.Images) > 0 {
		ref.Image = p.Images[0]
	}
	return ref
}

// DisabledClient is used when no catalog address is configured.
type DisabledClient struct{}

// Product always reports the catalog as disabled.
func (DisabledClient) Product(context.Context, string) (*model.ProductRef, error) {
	return nil, ErrCatalogDisabled
}
