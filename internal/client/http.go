// Package client talks to the cafe order API on behalf of the admin dashboard
// and the customer tracking page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/server/http/dto"
)

// GenericFailure is shown for transport failures and unexpected server errors.
const GenericFailure = "Something went wrong, please try again"

var (
	// ErrNetwork wraps transport failures and unexpected server responses.
	ErrNetwork = errors.New("network error")
	// ErrUnauthorized is returned when the admin key is missing or wrong.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a failure response returned by the server.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return domainErrors.ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return domainErrors.ErrNotFound
	case http.StatusConflict:
		return domainErrors.ErrVersionConflict
	case http.StatusUnprocessableEntity:
		return domainErrors.ErrInvalidTransition
	case http.StatusPreconditionRequired:
		return domainErrors.ErrMissingConfirmation
	default:
		return ErrNetwork
	}
}

// Option customizes API.
type Option func(*API)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.httpClient = c }
}

// WithAdminKey sends key in the X-Admin-Key header.
func WithAdminKey(key string) Option {
	return func(a *API) { a.adminKey = key }
}

// API is a thin typed wrapper over the order endpoints.
type API struct {
	baseURL    *url.URL
	httpClient *http.Client
	adminKey   string
}

// NewAPI creates API client for baseURL.
func NewAPI(baseURL string, opts ...Option) (*API, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("api url must be absolute")
	}
	a := &API{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ListOrders fetches orders matching search together with stats over all orders.
func (a *API) ListOrders(ctx context.Context, search string) ([]dto.Order, dto.Stats, error) {
	query := url.Values{}
	if strings.TrimSpace(search) != "" {
		query.Set("search", search)
	}
	var resp dto.OrderListResponse
	if err := a.do(ctx, http.MethodGet, "/api/orders", query, nil, nil, &resp); err != nil {
		return nil, dto.Stats{}, err
	}
	return resp.Data, resp.Stats, nil
}

// Stats fetches aggregated status counts.
func (a *API) Stats(ctx context.Context) (dto.Stats, error) {
	var stats dto.Stats
	err := a.do(ctx, http.MethodGet, "/api/orders/stats", nil, nil, nil, envelopeOf(&stats))
	return stats, err
}

// Order fetches a single order with resolved item images.
func (a *API) Order(ctx context.Context, id int64) (dto.Order, error) {
	var order dto.Order
	err := a.do(ctx, http.MethodGet, orderPath(id), nil, nil, nil, envelopeOf(&order))
	return order, err
}

// UpdateOrder sends a status and/or notes update.
func (a *API) UpdateOrder(ctx context.Context, id int64, req dto.UpdateOrderRequest) (dto.Order, error) {
	var order dto.Order
	err := a.do(ctx, http.MethodPut, orderPath(id), nil, nil, req, envelopeOf(&order))
	return order, err
}

// RequestDelete asks the server for a delete confirmation token.
func (a *API) RequestDelete(ctx context.Context, id int64) (dto.DeleteConfirmation, error) {
	var confirmation dto.DeleteConfirmation
	err := a.do(ctx, http.MethodPost, orderPath(id)+"/delete-request", nil, nil, nil, envelopeOf(&confirmation))
	return confirmation, err
}

// DeleteOrder deletes order id using a previously issued token.
func (a *API) DeleteOrder(ctx context.Context, id int64, token string) error {
	headers := map[string]string{"X-Confirm-Token": token}
	err := a.do(ctx, http.MethodDelete, orderPath(id), nil, headers, nil, nil)
	// The only bad request this endpoint answers for a well-formed id is a
	// rejected token.
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest && id > 0 {
		apiErr.kind = domainErrors.ErrInvalidConfirmation
	}
	return err
}

// TrackOrder fetches the customer view of an order by its number.
func (a *API) TrackOrder(ctx context.Context, orderNumber string) (dto.TrackingView, error) {
	var view dto.TrackingView
	err := a.do(ctx, http.MethodGet, "/api/orders/by-number/"+url.PathEscape(orderNumber), nil, nil, nil, envelopeOf(&view))
	return view, err
}

func orderPath(id int64) string {
	return "/api/orders/" + strconv.FormatInt(id, 10)
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func envelopeOf(data any) *envelope {
	return &envelope{Data: data}
}

// resolve appends route, which must already be path-escaped, to the base URL.
// Dot segments and escaped slashes inside route are sent as is.
func (a *API) resolve(route string) url.URL {
	endpoint := *a.baseURL
	raw := strings.TrimSuffix(endpoint.EscapedPath(), "/") + route
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	endpoint.Path, endpoint.RawPath = decoded, raw
	return endpoint
}

func (a *API) do(ctx context.Context, method, route string, query url.Values, headers map[string]string, body, out any) error {
	endpoint := a.resolve(route)
	endpoint.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.adminKey != "" {
		req.Header.Set("X-Admin-Key", a.adminKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, route, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure envelope
		_ = json.Unmarshal(raw, &failure)
		message := failure.Message
		kind := kindForStatus(resp.StatusCode)
		if message == "" || errors.Is(kind, ErrNetwork) {
			message = GenericFailure
		}
		return &APIError{Status: resp.StatusCode, Message: message, kind: kind}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	return nil
}
