package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("api.example.com:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "api.example.com:8080" {
		t.Fatalf("url = %q, want https scheme on bare host", u.String())
	}

	u, err = parseBaseURL("http://example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListAndGet(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/books":
			_ = json.NewEncoder(w).Encode([]Book{
				{StoreID: "a1", ID: "TLKH-001", Name: "Sapiens", Price: 100000, Discount: 20},
			})
		case "/api/books/TLKH-001":
			_ = json.NewEncoder(w).Encode(Book{StoreID: "a1", ID: "TLKH-001", Name: "Sapiens"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	books, err := c.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 1 || books[0].StoreID != "a1" {
		t.Fatalf("ListBooks = %#v, want 1 book a1", books)
	}

	book, err := c.GetBook(ctx, "TLKH-001")
	if err != nil {
		t.Fatalf("GetBook returned error: %v", err)
	}
	if book.Name != "Sapiens" {
		t.Fatalf("GetBook name = %q, want Sapiens", book.Name)
	}

	_, err = c.GetBook(ctx, "TLKH-999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetBook missing = %v, want ErrNotFound", err)
	}

	if !strings.HasPrefix(gotUserAgent, "bookdesk/") {
		t.Fatalf("User-Agent = %q, want bookdesk/*", gotUserAgent)
	}
}

func TestClient_RelatedExcludesRequestedBook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/related/TLKH" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Book{
			{StoreID: "a1", Name: "Sapiens"},
			{StoreID: "a2", Name: "Cosmos"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	books, err := c.RelatedBooks(context.Background(), "TLKH", "a1")
	if err != nil {
		t.Fatalf("RelatedBooks returned error: %v", err)
	}
	if len(books) != 1 || books[0].StoreID != "a2" {
		t.Fatalf("RelatedBooks = %#v, want only a2", books)
	}
}

func TestClient_GenerateID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/generate-id/TLKH" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(generateIDResponse{ID: "TLKH-001"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	id, err := c.GenerateID(context.Background(), "TLKH")
	if err != nil {
		t.Fatalf("GenerateID returned error: %v", err)
	}
	if id != "TLKH-001" {
		t.Fatalf("GenerateID = %q, want TLKH-001", id)
	}

	if _, err := c.GenerateID(context.Background(), ""); err == nil {
		t.Fatalf("GenerateID with empty category returned nil error, want error")
	}
}

func TestClient_CreateSubmitsMultipartForm(t *testing.T) {
	t.Parallel()

	imagePath := filepath.Join(t.TempDir(), "cover.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}

	var gotMethod, gotName, gotPrice, gotImage string
	var hadImagePart bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books" {
			http.NotFound(w, r)
			return
		}
		gotMethod = r.Method
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotName = r.FormValue("name")
		gotPrice = r.FormValue("price")
		if file, header, err := r.FormFile("image"); err == nil {
			hadImagePart = true
			gotImage = header.Filename
			_ = file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Book{StoreID: "new1", ID: "TLKH-002", Name: gotName})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	book, err := c.CreateBook(context.Background(), BookForm{
		Name:      "Cosmos",
		Category:  "TLKH",
		ID:        "TLKH-002",
		Price:     150000,
		Discount:  10,
		Author:    "Carl Sagan",
		Publisher: "NXB Tre",
		ImagePath: imagePath,
	})
	if err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if book.StoreID != "new1" {
		t.Fatalf("CreateBook store id = %q, want new1", book.StoreID)
	}
	if gotMethod != http.MethodPost || gotName != "Cosmos" || gotPrice != "150000" {
		t.Fatalf("form = method %q name %q price %q, want POST Cosmos 150000", gotMethod, gotName, gotPrice)
	}
	if !hadImagePart || gotImage != "cover.jpg" {
		t.Fatalf("image part = %v %q, want cover.jpg attached", hadImagePart, gotImage)
	}
}

func TestClient_UpdateOmitsUnchangedImage(t *testing.T) {
	t.Parallel()

	var hadImagePart bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/update/a1" || r.Method != http.MethodPut {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if file, _, err := r.FormFile("image"); err == nil {
			hadImagePart = true
			_ = file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Book{StoreID: "a1", Name: r.FormValue("name")})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	book, err := c.UpdateBook(context.Background(), "a1", BookForm{Name: "Sapiens 2nd", Price: 90000})
	if err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if book.Name != "Sapiens 2nd" {
		t.Fatalf("UpdateBook name = %q, want Sapiens 2nd", book.Name)
	}
	if hadImagePart {
		t.Fatalf("image part was sent for an unchanged image")
	}
}

func TestClient_DeleteSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/books/delete/a1":
			w.WriteHeader(http.StatusOK)
		case "/api/books/delete/gone":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "book is referenced by an order"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if err := c.DeleteBook(context.Background(), "a1"); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}

	err = c.DeleteBook(context.Background(), "gone")
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("DeleteBook error = %v, want ServerError", err)
	}
	if serverErr.Message != "book is referenced by an order" {
		t.Fatalf("server message = %q, want the body message", serverErr.Message)
	}
}

func TestClient_LoginAndRegister(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/login":
			if creds.Password != "s3cret" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
				return
			}
			_ = json.NewEncoder(w).Encode(loginResponse{Token: "tok123"})
		case "/api/register":
			if creds.Username == "taken" {
				w.WriteHeader(http.StatusConflict)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "username already exists"})
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	token, err := c.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("Login token = %q, want tok123", token)
	}

	_, err = c.Login(context.Background(), "admin", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Login error = %v, want AuthError", err)
	}

	if err := c.Register(context.Background(), "newuser", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	err = c.Register(context.Background(), "taken", "pw")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("Register error = %v, want ConflictError", err)
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = c.ListBooks(ctx)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("ListBooks error = %v, want NetworkError", err)
	}
}
