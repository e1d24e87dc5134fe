package endpoint

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// TokenKind selects how a credential is attached to a request.
type TokenKind int

const (
	// TokenLTPA2 is sent as the LtpaToken2 cookie.
	TokenLTPA2 TokenKind = iota + 1
	// TokenJWT is sent as the jwtToken cookie.
	TokenJWT
	// TokenBearer is sent as an Authorization bearer header.
	TokenBearer
)

func (k TokenKind) String() string {
	switch k {
	case TokenLTPA2:
		return "LtpaToken2"
	case TokenJWT:
		return "jwtToken"
	case TokenBearer:
		return "Bearer"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a session credential. Values are never modified after they are
// stored, so readers always see a whole token.
type Token struct {
	Kind  TokenKind
	Value string
}

// apply attaches the token to h.
func (t Token) apply(h http.Header) error {
	if t.Value == "" || strings.ContainsAny(t.Value, "\r\n;") {
		return fmt.Errorf("invalid %s token value", t.Kind)
	}
	switch t.Kind {
	case TokenLTPA2, TokenJWT:
		h.Add("Cookie", t.Kind.String()+"="+t.Value)
	case TokenBearer:
		h.Set("Authorization", "Bearer "+t.Value)
	default:
		return fmt.Errorf("unknown token kind %d", int(t.Kind))
	}
	return nil
}

// TokenStore holds the current session credential of one client.
// It is read by every request and written only by login and logout.
// Safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// Current returns the stored token, if any.
func (s *TokenStore) Current() (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return Token{}, false
	}
	return *s.token, true
}

// Replace swaps the stored token. A nil token clears the store.
func (s *TokenStore) Replace(t *Token) {
	var next *Token
	if t != nil {
		copied := *t
		next = &copied
	}
	s.mu.Lock()
	s.token = next
	s.mu.Unlock()
}
