// Package mocks provides in-memory store implementations for tests.
package mocks

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Anieto86/LabLink/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadyRotated mirrors the conditional-update failure of the real
// refresh token repository when a token was rotated concurrently.
var ErrAlreadyRotated = errors.New("refresh token already rotated")

// UserStore is an in-memory user store satisfying both the auth and user
// service store interfaces.
type UserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uint]*models.User)}
}

func (s *UserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *UserStore) CheckEmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *UserStore) SetActive(id uint, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsActive = active
	return nil
}

func (s *UserStore) GetAll(page, pageSize int, search string) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.User
	for _, user := range s.users {
		if search == "" || strings.Contains(user.Email, search) || strings.Contains(user.Name, search) {
			all = append(all, *user)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// RefreshTokenStore is an in-memory refresh token store keyed by token hash.
type RefreshTokenStore struct {
	mu     sync.Mutex
	nextID uint
	tokens map[string]*models.RefreshToken
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{tokens: make(map[string]*models.RefreshToken)}
}

func (s *RefreshTokenStore) Create(token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	token.ID = s.nextID
	copied := *token
	s.tokens[token.TokenHash] = &copied
	return nil
}

func (s *RefreshTokenStore) GetByHash(hash string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[hash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *token
	return &copied, nil
}

func (s *RefreshTokenStore) Rotate(oldHash string, next *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tokens[oldHash]
	if !ok || old.IsRevoked {
		return ErrAlreadyRotated
	}
	old.IsRevoked = true
	replaced := next.TokenHash
	old.ReplacedByToken = &replaced
	s.nextID++
	next.ID = s.nextID
	copied := *next
	s.tokens[next.TokenHash] = &copied
	return nil
}

func (s *RefreshTokenStore) Revoke(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token, ok := s.tokens[hash]; ok {
		token.IsRevoked = true
	}
	return nil
}

// Hashes returns the stored token hashes, for asserting that plaintext
// secrets never reach the store.
func (s *RefreshTokenStore) Hashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	hashes := make([]string, 0, len(s.tokens))
	for hash := range s.tokens {
		hashes = append(hashes, hash)
	}
	return hashes
}
