package services

import (
	"errors"
	"fmt"

	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/utils"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a user does not exist or is deactivated
var ErrUserNotFound = errors.New("user not found")

// UserStore is the user persistence the user service requires
type UserStore interface {
	GetByID(id uint) (*models.User, error)
	SetActive(id uint, active bool) error
	GetAll(page, pageSize int, search string) ([]models.User, int64, error)
}

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetActiveByID retrieves an active user by ID. Deactivated users are
// reported as not found.
func (s *UserService) GetActiveByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByID retrieves a user by ID regardless of active state
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SetActive sets the active flag of a user
func (s *UserService) SetActive(id uint, active bool) error {
	if err := s.userRepo.SetActive(id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return nil
}

// GetAll returns users with pagination and search
func (s *UserService) GetAll(page, pageSize int, search string) ([]models.User, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)
	users, total, err := s.userRepo.GetAll(page, pageSize, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}
	return users, total, nil
}
