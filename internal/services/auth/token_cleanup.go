package auth

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TokenCleaner deletes refresh token rows that can never validate again
type TokenCleaner interface {
	CleanupTokens() error
}

// TokenCleanupService periodically purges expired and revoked refresh
// tokens. Expiry is still enforced lazily at validation time; the purge
// only keeps the table from growing without bound.
type TokenCleanupService struct {
	refreshTokens TokenCleaner
	interval      time.Duration
	stopChan      chan bool
}

func NewTokenCleanupService(refreshTokens TokenCleaner) *TokenCleanupService {
	return &TokenCleanupService{
		refreshTokens: refreshTokens,
		interval:      24 * time.Hour,
		stopChan:      make(chan bool),
	}
}

// Start starts the token cleanup service
func (s *TokenCleanupService) Start() {
	go s.run()
	logrus.Info("Token cleanup service started")
}

// Stop stops the token cleanup service
func (s *TokenCleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("Token cleanup service stopped")
}

// SetInterval sets the cleanup interval
func (s *TokenCleanupService) SetInterval(interval time.Duration) {
	s.interval = interval
}

func (s *TokenCleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *TokenCleanupService) cleanup() {
	if err := s.refreshTokens.CleanupTokens(); err != nil {
		logrus.Errorf("Failed to cleanup tokens: %v", err)
		return
	}
	logrus.Info("Token cleanup completed")
}
