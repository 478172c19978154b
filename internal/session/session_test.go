package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func storeAt(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return s
}

func TestStore_LoadMissingFileIsAnonymous(t *testing.T) {
	s := storeAt(t, t.TempDir())
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Authenticated() || s.IsAdmin() || s.Token() != "" {
		t.Fatalf("missing token file should yield anonymous session")
	}
}

func TestStore_SetTokenPersistsAndDecodes(t *testing.T) {
	dir := t.TempDir()
	s := storeAt(t, dir)

	token := signedToken(t, "alice", "admin")
	if err := s.SetToken(token); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}
	if !s.Authenticated() || !s.IsAdmin() {
		t.Fatalf("session = auth %v admin %v, want both true", s.Authenticated(), s.IsAdmin())
	}
	if got := s.Identity(); got.Username != "alice" || got.Role != "admin" {
		t.Fatalf("Identity = %#v, want alice/admin", got)
	}

	// A fresh store should read the same session back.
	again := storeAt(t, dir)
	if err := again.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !again.IsAdmin() || again.Token() != token {
		t.Fatalf("reloaded session lost the token")
	}
}

func TestStore_NonAdminRoleIsGatedOut(t *testing.T) {
	s := storeAt(t, t.TempDir())
	if err := s.SetToken(signedToken(t, "bob", "viewer")); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}
	if !s.Authenticated() {
		t.Fatalf("Authenticated = false, want true")
	}
	if s.IsAdmin() {
		t.Fatalf("IsAdmin = true for viewer role, want false")
	}
}

func TestStore_LoadClearsUndecodableToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("not-a-jwt"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}

	s := storeAt(t, dir)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Authenticated() {
		t.Fatalf("undecodable token should yield anonymous session")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("undecodable token file should be removed, stat err = %v", err)
	}
}

func TestStore_ClearRemovesTokenAndIdentity(t *testing.T) {
	dir := t.TempDir()
	s := storeAt(t, dir)
	if err := s.SetToken(signedToken(t, "alice", "admin")); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if s.Authenticated() || s.IsAdmin() || s.Token() != "" {
		t.Fatalf("Clear should revert to anonymous session")
	}
	if _, err := os.Stat(filepath.Join(dir, "token")); !os.IsNotExist(err) {
		t.Fatalf("token file should be gone, stat err = %v", err)
	}

	// Clearing an already-anonymous session is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}

func TestStore_SetTokenRejectsGarbage(t *testing.T) {
	s := storeAt(t, t.TempDir())
	if err := s.SetToken("garbage"); err == nil {
		t.Fatalf("SetToken(garbage) returned nil error, want error")
	}
	if s.Authenticated() {
		t.Fatalf("failed SetToken should not authenticate")
	}
}
