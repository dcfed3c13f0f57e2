package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by every session token. Subject holds the email.
type Claims struct {
	UserID int64       `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string { return c.Subject }

// TokenService issues and verifies the signed bearer tokens used as sessions.
// Tokens are stateless: there is no revocation list, so a leaked token stays
// valid until its expiry instant.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding identity and role, expiring after the
// configured TTL.
func (s *TokenService) Issue(userID int64, email string, role entity.Role) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return signed, exp, err
}

// Verify checks signature and expiry. It returns ErrTokenExpired for expired
// tokens and ErrTokenInvalid for everything else.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == 0 || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
