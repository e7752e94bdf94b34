package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Anieto86/LabLink/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the user persistence the auth service requires
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CheckEmailExists(email string) (bool, error)
}

// RefreshTokenStore is the refresh token persistence the auth service
// requires. Rotate must be atomic: revoke-and-link the old record and
// insert the new one in a single transactional unit.
type RefreshTokenStore interface {
	Create(token *models.RefreshToken) error
	GetByHash(hash string) (*models.RefreshToken, error)
	Rotate(oldHash string, next *models.RefreshToken) error
	Revoke(hash string) error
}

// EventPublisher receives auth lifecycle events. May be nil.
type EventPublisher interface {
	PublishAuthEvent(event string, userID uint)
}

type AuthService struct {
	users           UserStore
	refreshTokens   RefreshTokenStore
	events          EventPublisher
	jwtSecret       []byte
	signingMethod   *jwt.SigningMethodHMAC
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(users UserStore, refreshTokens RefreshTokenStore, events EventPublisher) *AuthService {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte(os.Getenv("SECRET_KEY"))
	}
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("default-secret-key-change-in-production")
		logrus.Warn("JWT_SECRET not set, using insecure default")
	}

	signingMethod := jwt.SigningMethodHS256
	switch os.Getenv("JWT_ALG") {
	case "", "HS256":
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		logrus.Warnf("Unsupported JWT_ALG %q, falling back to HS256", os.Getenv("JWT_ALG"))
	}

	accessTokenTTL := 10 * time.Minute
	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			accessTokenTTL = parsed
		}
	}

	refreshTokenTTL := 7 * 24 * time.Hour
	if ttl := os.Getenv("REFRESH_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			refreshTokenTTL = parsed
		}
	}

	return &AuthService{
		users:           users,
		refreshTokens:   refreshTokens,
		events:          events,
		jwtSecret:       jwtSecret,
		signingMethod:   signingMethod,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// HashPassword produces a salted bcrypt digest of the plaintext
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// Malformed stored hashes fail closed.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a new user and issues a first token pair
func (s *AuthService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleViewer
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.CheckEmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.IssueTokens(user)
	if err != nil {
		return nil, err
	}

	s.publish("user.registered", user.ID)
	return &models.RegisterResponse{
		ID:           user.ID,
		Email:        user.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(req *models.LoginRequest) (*models.TokenPair, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.IssueTokens(user)
	if err != nil {
		return nil, err
	}

	s.publish("user.logged_in", user.ID)
	return tokens, nil
}

// IssueTokens signs a fresh access token and issues a new refresh token
// for the user. Side effect: one new refresh token row.
func (s *AuthService) IssueTokens(user *models.User) (*models.TokenPair, error) {
	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshSecret := generateRefreshSecret()
	record := &models.RefreshToken{
		TokenHash: hashRefreshSecret(refreshSecret),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.refreshTokens.Create(record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshSecret,
	}, nil
}

// Refresh rotates a refresh token: the presented token is validated,
// atomically revoked and replaced, and a fresh access token is signed
// against current user data. Any failure collapses to
// ErrInvalidRefreshToken so callers cannot probe token state.
func (s *AuthService) Refresh(refreshSecret string) (*models.TokenPair, error) {
	stored, err := s.refreshTokens.GetByHash(hashRefreshSecret(refreshSecret))
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if stored.IsRevoked || !stored.ExpiresAt.After(time.Now()) {
		return nil, ErrInvalidRefreshToken
	}

	nextSecret := generateRefreshSecret()
	next := &models.RefreshToken{
		TokenHash: hashRefreshSecret(nextSecret),
		UserID:    stored.UserID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.refreshTokens.Rotate(stored.TokenHash, next); err != nil {
		// Lost a race against a concurrent rotation of the same token.
		return nil, ErrInvalidRefreshToken
	}

	// Access token claims may have gone stale; the refresh boundary is the
	// only point where account state is re-checked.
	user, err := s.users.GetByID(stored.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.publish("token.rotated", user.ID)
	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: nextSecret,
	}, nil
}

// Logout revokes the presented refresh token. Idempotent: unknown and
// already-revoked tokens are not errors. Already-issued access tokens
// stay valid until they expire.
func (s *AuthService) Logout(refreshSecret string) error {
	if err := s.refreshTokens.Revoke(hashRefreshSecret(refreshSecret)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// VerifyAccessToken validates a bearer token signature and expiry and
// returns the identity it carries. Verification is stateless: no store
// access is performed.
func (s *AuthService) VerifyAccessToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.signingMethod.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidAccessToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	return &models.Identity{
		UserID: uint(userID),
		Email:  claims.Email,
	}, nil
}

func (s *AuthService) signAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.AccessClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(s.signingMethod, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) publish(event string, userID uint) {
	if s.events != nil {
		s.events.PublishAuthEvent(event, userID)
	}
}

// generateRefreshSecret produces an unguessable opaque secret: two
// independently generated random UUIDs joined by a dot. It carries no
// claims and is meaningless without a store lookup.
func generateRefreshSecret() string {
	return uuid.NewString() + "." + uuid.NewString()
}

// hashRefreshSecret is the stored form of a refresh secret. Only this
// hash is ever persisted.
func hashRefreshSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
