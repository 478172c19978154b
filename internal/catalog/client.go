package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BookAPI defines the remote catalog operations the screens depend on.
// This interface is implemented by *Client and can be used for testing.
type BookAPI interface {
	ListBooks(ctx context.Context) ([]Book, error)
	GetBook(ctx context.Context, id string) (*Book, error)
	RelatedBooks(ctx context.Context, category, excludeStoreID string) ([]Book, error)
	GenerateID(ctx context.Context, category string) (string, error)
	CreateBook(ctx context.Context, form BookForm) (*Book, error)
	UpdateBook(ctx context.Context, storeID string, form BookForm) (*Book, error)
	DeleteBook(ctx context.Context, storeID string) error
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
}

// Ensure Client implements BookAPI at compile time.
var _ BookAPI = (*Client)(nil)

// Client talks to the bookstore catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public catalog backend.
	DefaultBaseURL = "https://backend-web-book.onrender.com"

	defaultUserAgent      = "bookdesk/0.1"
	defaultRequestTimeout = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL selects
// the public backend; a non-positive timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListBooks retrieves the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var books []Book
	if err := c.get(ctx, "/api/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook retrieves a single book by its catalog code.
func (c *Client) GetBook(ctx context.Context, id string) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("book id required")
	}
	var book Book
	if err := c.get(ctx, "/api/books/"+url.PathEscape(id), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// RelatedBooks retrieves books sharing a category, with excludeStoreID
// removed from the result. An empty result is not an error.
func (c *Client) RelatedBooks(ctx context.Context, category, excludeStoreID string) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var books []Book
	if err := c.get(ctx, "/api/books/related/"+url.PathEscape(category), &books); err != nil {
		return nil, err
	}
	out := books[:0]
	for _, b := range books {
		if b.StoreID == excludeStoreID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// GenerateID asks the server for the next catalog code in a category.
func (c *Client) GenerateID(ctx context.Context, category string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(category) == "" {
		return "", fmt.Errorf("category required")
	}
	var payload generateIDResponse
	if err := c.get(ctx, "/api/books/generate-id/"+url.PathEscape(category), &payload); err != nil {
		return "", err
	}
	return payload.ID, nil
}

// CreateBook submits a new book as a multipart form.
func (c *Client) CreateBook(ctx context.Context, form BookForm) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var book Book
	if err := c.doMultipart(ctx, http.MethodPost, "/api/books", form, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook replaces the fields of an existing book. The image part is sent
// only when form.ImagePath names a newly chosen local file.
func (c *Client) UpdateBook(ctx context.Context, storeID string, form BookForm) (*Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, fmt.Errorf("store id required")
	}
	var book Book
	path := "/api/books/update/" + url.PathEscape(storeID)
	if err := c.doMultipart(ctx, http.MethodPut, path, form, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book by its store identity.
func (c *Client) DeleteBook(ctx context.Context, storeID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(storeID) == "" {
		return fmt.Errorf("store id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/books/delete/"+url.PathEscape(storeID), nil, nil)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", credentials{Username: username, Password: password}, &payload)
	if err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", &AuthError{Message: "no token in response"}
	}
	return payload.Token, nil
}

// Register creates a new account. The password/confirmation match is checked
// by the caller before this is invoked.
func (c *Client) Register(ctx context.Context, username, password string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/register", credentials{Username: username, Password: password}, nil)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

// do issues a request with an optional JSON body and decodes the response
// into dest when dest is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, reader, contentType, dest)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form BookForm, dest any) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for _, field := range form.fields() {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("encode field %s: %w", field[0], err)
		}
	}
	if form.ImagePath != "" {
		if err := attachImage(writer, form.ImagePath); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}
	return c.send(ctx, method, path, buf, writer.FormDataContentType(), dest)
}

func attachImage(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = file.Close() }()

	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, serverMessage(resp.Body))
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverMessage extracts the "message" field from an error body when present.
func serverMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
