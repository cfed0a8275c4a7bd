package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Tokens signs and verifies bearer tokens with a single shared HS512
// secret. There is no key rotation and no key id lookup.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL is the fixed lifetime stamped into every issued token.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Sign issues a token for username. Role names become the space-joined
// "scope" claim with the ROLE_ prefix stripped, e.g. ROLE_ADMIN -> ADMIN.
// A roleless user gets an empty scope claim.
func (t *Tokens) Sign(username string, roles []string) (string, error) {
	scopes := make([]string, 0, len(roles))
	for _, r := range roles {
		scopes = append(scopes, strings.TrimPrefix(r, "ROLE_"))
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   username,
		"scope": strings.Join(scopes, " "),
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Only HS512 is accepted; expiry is enforced here and nowhere else.
func (t *Tokens) Verify(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS512"}))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mapc["sub"].(string)
	if sub == "" {
		return Claims{}, ErrInvalidToken
	}
	var scopes []string
	if s, ok := mapc["scope"].(string); ok && s != "" {
		scopes = strings.Fields(s)
	}
	return Claims{Subject: sub, Scopes: scopes}, nil
}
