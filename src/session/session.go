package session

import (
	"blacktie/src/config"
	"blacktie/src/models"
	"blacktie/src/types"
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the client-stored identity blob: set at login, cleared at
// logout, read through typed accessors everywhere else.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

var (
	mu      sync.RWMutex
	current *Session
)

var ErrNoSession = errors.New("no active session")
var ErrTokenExpired = errors.New("session token expired")

// Save persists the session to disk and makes it the process-wide identity.
func Save(s Session) error {
	b, err := json.Marshal(&s)
	if err != nil {
		return err
	}
	path := config.SessionFilePath()
	if err := os.WriteFile(path, b, 0o600); err != nil {
		log.Printf("[session] Error writing session file: %s\n", err.Error())
		return err
	}
	mu.Lock()
	current = &s
	mu.Unlock()
	return nil
}

// Current returns the active session, restoring it from disk on first use.
func Current() (*Session, error) {
	mu.RLock()
	s := current
	mu.RUnlock()
	if s != nil {
		return s, nil
	}
	path := config.SessionFilePath()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var restored Session
	if err := json.Unmarshal(b, &restored); err != nil {
		log.Printf("[session] Error restoring session: %s\n", err.Error())
		return nil, ErrNoSession
	}
	if restored.Token == "" {
		return nil, ErrNoSession
	}
	mu.Lock()
	current = &restored
	mu.Unlock()
	return &restored, nil
}

// Clear drops the in-memory session and removes the session file.
func Clear() error {
	mu.Lock()
	current = nil
	mu.Unlock()
	path := config.SessionFilePath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Claims decodes the stored token's claims. The signature is server-owned
// and is not verified on the client; only shape and expiry are checked.
func Claims() (*types.Claims, error) {
	s, err := Current()
	if err != nil {
		return nil, err
	}
	claims := &types.Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		log.Printf("[session] token error: %s\n", err.Error())
		return nil, err
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// NewSession replaces the active session without touching disk. Test hook.
func NewSession(s *Session) {
	mu.Lock()
	current = s
	mu.Unlock()
}
