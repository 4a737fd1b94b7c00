package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidToken    = errors.New("invalid or expired admin token")
	ErrMissingScope    = errors.New("admin token lacks the required scope")
)

// Claims are the JWT claims of an admin capability token.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type TokenService interface {
	// OpenSession checks the admin key and issues a capability token.
	OpenSession(adminKey string) (*domain.Session, error)
	IssueToken() (*domain.Session, error)
	VerifyToken(tokenString, scope string) (*Claims, error)
}

type tokenService struct {
	keyHash []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewTokenService prefers cfg.KeyHash; otherwise the plain key is hashed once here.
func NewTokenService(cfg config.AdminConfig) (TokenService, error) {
	keyHash := []byte(cfg.KeyHash)
	if len(keyHash) == 0 {
		if cfg.Key == "" {
			return nil, errors.New("admin key or admin key hash is required")
		}
		hashed, err := HashAdminKey(cfg.Key)
		if err != nil {
			return nil, err
		}
		keyHash = []byte(hashed)
	}
	if _, err := bcrypt.Cost(keyHash); err != nil {
		return nil, fmt.Errorf("invalid admin key hash: %w", err)
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("admin token secret is required")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &tokenService{
		keyHash: keyHash,
		secret:  []byte(cfg.TokenSecret),
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

func HashAdminKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash admin key: %w", err)
	}
	return string(hashed), nil
}

func (s *tokenService) OpenSession(adminKey string) (*domain.Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(adminKey)); err != nil {
		logger.Warn("OpenSession: rejected admin key")
		return nil, ErrInvalidAdminKey
	}
	return s.IssueToken()
}

func (s *tokenService) IssueToken() (*domain.Session, error) {
	now := s.now()
	expiresAt := jwt.NewNumericDate(now.Add(s.ttl))
	claims := Claims{
		Scope: domain.ScopeCreatePlants,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.TokenSubject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: expiresAt,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		logger.Error("IssueToken: failed to sign token", err)
		return nil, fmt.Errorf("could not generate token: %w", err)
	}
	return &domain.Session{Token: signed, ExpiresAt: expiresAt.Time}, nil
}

func (s *tokenService) VerifyToken(tokenString, scope string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(domain.TokenSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Scope != scope {
		return nil, ErrMissingScope
	}
	return claims, nil
}
