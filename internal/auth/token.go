package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("token: signing secret is required")
	ErrEmptyUserID   = errors.New("token: empty user ID")
	// ErrInvalidToken covers bad signatures, malformed tokens and expired tokens.
	ErrInvalidToken = errors.New("token: invalid or expired")
	// ErrMissingClaims is returned for a correctly signed token without a string user ID.
	ErrMissingClaims = errors.New("token: missing required claims")
)

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. An expiry of zero issues tokens
// without an exp claim.
func NewTokenManager(secret []byte, expiry time.Duration) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if expiry < 0 {
		return nil, fmt.Errorf("token: negative expiry %s", expiry)
	}

	return &TokenManager{
		secret: secret,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the given user.
func (m *TokenManager) Issue(userID, username string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	now := m.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.expiry))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and structure of tokenString and returns its claims.
// Claims are decoded only after the signature checks out, so a signed token with
// a missing or mistyped userId reports ErrMissingClaims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	raw := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, raw, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := raw["userId"].(string)
	if !ok || userID == "" {
		return nil, ErrMissingClaims
	}
	username, _ := raw["username"].(string)

	claims := &Claims{
		UserID:   userID,
		Username: username,
	}
	// Both were already type-checked by the parser's validator.
	claims.IssuedAt, _ = raw.GetIssuedAt()
	claims.ExpiresAt, _ = raw.GetExpirationTime()

	return claims, nil
}
