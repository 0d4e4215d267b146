package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/companyinfo-backend/internal/platform/ctxutil"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

const RoleAdmin = "Admin"

type AuthService interface {
	// Login checks the fixed admin credentials and issues a signed access
	// token.
	Login(ctx context.Context, username, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type AuthConfig struct {
	JWTSecretKey      string
	Issuer            string
	Audience          string
	AccessTTL         time.Duration
	AdminUsername     string
	AdminPasswordHash []byte
}

type JWTClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	log *logger.Logger
	cfg AuthConfig
	now func() time.Time
}

func NewAuthService(log *logger.Logger, cfg AuthConfig) (AuthService, error) {
	serviceLog := log.With("service", "AuthService")
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return nil, fmt.Errorf("jwt secret key is required")
	}
	if strings.TrimSpace(cfg.AdminUsername) == "" || len(cfg.AdminPasswordHash) == 0 {
		return nil, fmt.Errorf("admin credentials are required")
	}
	if _, err := bcrypt.Cost(cfg.AdminPasswordHash); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 30 * time.Minute
	}
	return &authService{log: serviceLog, cfg: cfg, now: time.Now}, nil
}

// HashPassword is used at startup when only a plaintext admin password is
// configured.
func HashPassword(password string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hashed, nil
}

func (as *authService) GetAccessTTL() time.Duration { return as.cfg.AccessTTL }

func (as *authService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(as.cfg.AdminUsername)) == 1
	// Always pay for the bcrypt comparison so a wrong username is not faster.
	passErr := bcrypt.CompareHashAndPassword(as.cfg.AdminPasswordHash, []byte(password))
	if !userOK || passErr != nil {
		as.log.Warn("Login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	tok, err := as.generateAccessToken(username)
	if err != nil {
		as.log.Error("Generate access token error", "error", err)
		return "", fmt.Errorf("generate access token: %w", err)
	}
	as.log.Info("Login succeeded", "username", username)
	return tok, nil
}

func (as *authService) generateAccessToken(username string) (string, error) {
	now := as.now()
	claims := JWTClaims{
		Name: username,
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			Issuer:    as.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(as.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if as.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{as.cfg.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.cfg.JWTSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, ErrInvalidToken
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(as.now),
	}
	if as.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(as.cfg.Issuer))
	}
	if as.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(as.cfg.Audience))
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.cfg.JWTSecretKey), nil
	}, opts...)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, ErrInvalidToken
	}
	if claims.Subject == "" {
		return ctx, fmt.Errorf("%w: %w", ErrInvalidToken, errors.New("missing subject"))
	}
	rd := &ctxutil.RequestData{
		TokenString: tokenString,
		TokenID:     claims.ID,
		Subject:     claims.Subject,
		Role:        claims.Role,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}
