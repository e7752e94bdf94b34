package repository

import (
	"errors"
	"time"

	"github.com/Anieto86/LabLink/internal/models"

	"gorm.io/gorm"
)

// ErrTokenRotated is returned by Rotate when the previous token was already
// revoked or rotated by a concurrent request. Exactly one rotation attempt
// per token can succeed.
var ErrTokenRotated = errors.New("refresh token already rotated")

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create creates a new refresh token record
func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// GetByHash retrieves a refresh token by its stored hash. Revoked and
// expired records are returned as-is; callers decide how to treat them.
func (r *RefreshTokenRepository) GetByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", hash).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Rotate atomically revokes the record identified by oldHash, links it to
// the replacement, and inserts the replacement record. The conditional
// update guards against concurrent rotation of the same token: the losing
// request observes zero affected rows and gets ErrTokenRotated.
func (r *RefreshTokenRepository) Rotate(oldHash string, next *models.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RefreshToken{}).
			Where("token_hash = ? AND is_revoked = ?", oldHash, false).
			Updates(map[string]interface{}{
				"is_revoked":        true,
				"replaced_by_token": next.TokenHash,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenRotated
		}
		return tx.Create(next).Error
	})
}

// Revoke marks the record matching hash as revoked. Revoking an unknown or
// already-revoked token is not an error.
func (r *RefreshTokenRepository) Revoke(hash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("is_revoked", true).Error
}

// RevokeAllUserTokens revokes every refresh token belonging to a user
func (r *RefreshTokenRepository) RevokeAllUserTokens(userID uint) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("user_id = ?", userID).
		Update("is_revoked", true).Error
}

// CleanupTokens deletes expired and revoked tokens
func (r *RefreshTokenRepository) CleanupTokens() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Where("is_revoked = ?", true).Delete(&models.RefreshToken{}).Error
	})
}
