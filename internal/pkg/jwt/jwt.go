package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and validates the session tokens handed out after a
// successful PIN unlock.
type Service interface {
	GenerateSessionToken() (token string, expiresAt int64, err error)
	ValidateSessionToken(tokenString string) error
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey         string
	sessionExpiration string
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpiration string) Service {
	return &JWTService{
		secretKey:         secretKey,
		sessionExpiration: sessionExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"type": "session",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateSessionToken(tokenString string) error {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "session" {
		return jwt.ErrInvalidJWT()
	}

	if j.IsTokenRevoked(tokenString) {
		return jwt.ErrInvalidJWT()
	}

	return nil
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
