// Package session holds the authenticated identity derived from the stored
// API token. The token is decoded without signature verification: the client
// gate is a UX convenience, authorization is enforced server-side.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role that unlocks the create/update/delete screens.
const RoleAdmin = "admin"

const defaultTokenPath = "~/.config/bookdesk/token"

// Identity is the subset of token claims the UI cares about.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Store persists the token across runs and exposes the decoded identity.
// It is owned by the UI goroutine and is not safe for concurrent use.
type Store struct {
	path     string
	token    string
	identity Identity
	active   bool
}

// NewStore builds a Store persisting at path; empty selects the default
// ~/.config/bookdesk/token.
func NewStore(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: resolved}, nil
}

// Load reads the persisted token, if any. A missing file or an undecodable
// token yields an anonymous session; an undecodable token is also removed
// from disk. Load never surfaces decode failures as errors.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	identity, err := decodeIdentity(token)
	if err != nil {
		_ = os.Remove(s.path)
		s.reset()
		return nil
	}

	s.token = token
	s.identity = identity
	s.active = true
	return nil
}

// SetToken decodes and persists a freshly issued token.
func (s *Store) SetToken(token string) error {
	identity, err := decodeIdentity(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	s.token = token
	s.identity = identity
	s.active = true
	return nil
}

// Clear removes the persisted token and reverts to an anonymous session.
func (s *Store) Clear() error {
	s.reset()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Token returns the raw token, empty when anonymous.
func (s *Store) Token() string { return s.token }

// Identity returns the decoded claims, zero when anonymous.
func (s *Store) Identity() Identity { return s.identity }

// Authenticated reports whether a decoded token is held.
func (s *Store) Authenticated() bool { return s.active }

// IsAdmin reports whether the session may see mutation screens.
func (s *Store) IsAdmin() bool {
	return s.active && s.identity.Role == RoleAdmin
}

func (s *Store) reset() {
	s.token = ""
	s.identity = Identity{}
	s.active = false
}

// decodeIdentity extracts claims without verifying the signature. The client
// holds no signing key and does not need one.
func decodeIdentity(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("empty token")
	}
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, err
	}
	return Identity{Username: claims.Username, Role: claims.Role}, nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultTokenPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
