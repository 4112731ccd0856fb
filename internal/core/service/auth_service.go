package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexospark/website-api/internal/api/metrics"
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// tokenClaims binds a token to exactly one principal via the subject claim.
type tokenClaims struct {
	jwt.RegisteredClaims
}

// AuthService implements registration, login, and bearer-token resolution.
// Tokens are stateless: validity is signature plus expiry, nothing is
// stored server-side and nothing is revoked.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a principal with the default role and issues a token.
// The plaintext password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, "", domain.Validation("please provide name, email and password")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return nil, "", domain.Conflict("email already in use")
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return nil, "", err
	}

	token, err := s.IssueToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

// Login verifies credentials and issues a token. The failure is identical
// for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domain.Validation("please provide email and password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// IssueToken produces a signed token encoding the principal's identifier
// and an expiry instant. Pure encoding, no side effects.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Authenticate verifies a bearer token and resolves the principal it was
// issued to. An expired or tampered token and a token whose subject no
// longer exists all fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, domain.Unauthenticated("invalid or expired token")
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.Unauthenticated("the user belonging to this token no longer exists")
		}
		return nil, err
	}
	return user, nil
}
