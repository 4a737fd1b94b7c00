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
	"strings"
	"time"

	adminDomain "github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

const (
	DefaultTimeout = 10 * time.Second

	MsgNetworkFailure = "Unable to connect to server. Please check your internet connection."
	msgServerDefault  = "An error occurred"
	msgUnexpected     = "An unexpected error occurred"
)

// APIError is the single error shape every client call fails with. Status is
// 0 when no HTTP response was received.
type APIError struct {
	Message string
	Status  int
	Errors  []domain.FieldError
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// FieldErrors maps server-side field errors by field name.
func (e *APIError) FieldErrors() map[string]string {
	return (&domain.ValidationError{Errors: e.Errors}).ByField()
}

// AsAPIError unwraps err into an *APIError, wrapping foreign errors as unexpected.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return unexpectedError(err)
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

// Client talks to the catalog HTTP API. BaseURL includes the /api prefix.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// SearchParams builds the plant list query: a trimmed search term, and the
// category unless it is empty or "all".
func SearchParams(searchTerm, category string) url.Values {
	params := url.Values{}
	if s := strings.TrimSpace(searchTerm); s != "" {
		params.Set("search", s)
	}
	if category != "" && category != domain.AllCategories {
		params.Set("category", category)
	}
	return params
}

func (c *Client) ListPlants(ctx context.Context, searchTerm, category string) ([]domain.Plant, error) {
	path := "/plants"
	if params := SearchParams(searchTerm, category); len(params) > 0 {
		path += "?" + params.Encode()
	}
	plants := []domain.Plant{}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (c *Client) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	var plant domain.Plant
	if err := c.do(ctx, http.MethodGet, "/plants/"+url.PathEscape(id), "", nil, &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := c.do(ctx, http.MethodGet, "/plants/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreatePlant(ctx context.Context, token string, draft domain.PlantDraft) (*domain.Plant, error) {
	var plant domain.Plant
	if err := c.do(ctx, http.MethodPost, "/plants", token, draft, &plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

func (c *Client) OpenAdminSession(ctx context.Context, adminKey string) (*adminDomain.Session, error) {
	var session adminDomain.Session
	req := adminDomain.SessionRequest{AdminKey: adminKey}
	if err := c.do(ctx, http.MethodPost, "/admin/session", "", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return unexpectedError(err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		logger.Error("CatalogClient: NewRequest failed", err)
		return unexpectedError(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("Making %s request to %s", method, path)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("CatalogClient: request failed", err)
		return &APIError{Message: MsgNetworkFailure}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Message: env.Message, Status: resp.StatusCode, Errors: env.Errors}
		if decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = msgServerDefault
		}
		logger.Warn("CatalogClient: %s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}
	if decodeErr != nil {
		logger.Error("CatalogClient: JSON decode failed", decodeErr)
		return unexpectedError(fmt.Errorf("failed to decode response: %w", decodeErr))
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return unexpectedError(fmt.Errorf("failed to decode response data: %w", err))
	}
	return nil
}

func unexpectedError(err error) *APIError {
	msg := msgUnexpected
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Message: msg}
}
