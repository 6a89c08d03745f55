package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/utils"
	"github.com/minhng-dev/taskblog/models"

	"github.com/go-resty/resty/v2"
)

// APIClientConfig carries the connection settings for [NewAPIClient].
type APIClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type apiClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewAPIClient constructs an HTTP implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewAPIClient(cfg APIClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api client base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &apiClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (a *apiClient) SetToken(token string) {
	a.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (a *apiClient) Token() string {
	return a.token
}

// Register implements [APIClient]. It POSTs the payload to
// POST /v1/auth/register and maps non-2xx responses to sentinel errors.
func (a *apiClient) Register(ctx context.Context, payload map[string]any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v1/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [APIClient]. It POSTs the credentials to
// POST /v1/auth/login and stores the access token from the response
// envelope via SetToken.
func (a *apiClient) Login(ctx context.Context, email, password string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/v1/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope struct {
		Metadata struct {
			Tokens struct {
				AccessToken string `json:"accessToken"`
			} `json:"tokens"`
		} `json:"metadata"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Metadata.Tokens.AccessToken == "" {
		return fmt.Errorf("login response carries no access token")
	}

	a.SetToken(envelope.Metadata.Tokens.AccessToken)
	return nil
}

// CreateTodo implements [APIClient].
func (a *apiClient) CreateTodo(ctx context.Context, payload map[string]any) (models.Todo, error) {
	resp, err := a.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v1/todos/")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var envelope struct {
		Metadata models.Todo `json:"metadata"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Todo{}, fmt.Errorf("decode create todo response: %w", err)
	}

	return envelope.Metadata, nil
}

// GetAllTodos implements [APIClient].
func (a *apiClient) GetAllTodos(ctx context.Context, query map[string]string) ([]models.Todo, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParams(query).
		Get("/v1/todos/")
	if err != nil {
		return nil, fmt.Errorf("get todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope struct {
		Metadata []models.Todo `json:"metadata"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode todos response: %w", err)
	}

	return envelope.Metadata, nil
}

// GetPostByID implements [APIClient].
func (a *apiClient) GetPostByID(ctx context.Context, postID int64) (models.Post, error) {
	resp, err := a.authedRequest(ctx).
		Get("/v1/posts/" + strconv.FormatInt(postID, 10))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var envelope struct {
		Metadata models.Post `json:"metadata"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Post{}, fmt.Errorf("decode post response: %w", err)
	}

	return envelope.Metadata, nil
}

// GetProfile implements [APIClient].
func (a *apiClient) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := a.authedRequest(ctx).
		Get("/v1/profile/")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope struct {
		Metadata struct {
			Profile models.User `json:"profile"`
		} `json:"metadata"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return envelope.Metadata.Profile, nil
}

func (a *apiClient) authedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().SetContext(ctx)
	if token := a.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
