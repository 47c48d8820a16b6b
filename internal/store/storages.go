package store

import (
	"github.com/vidora/vidora/internal/logger"
)

// Storages bundles every repository implementation behind its interface so
// the service layer receives one wired dependency at construction time.
type Storages struct {
	UserRepository         UserRepository
	SubscriptionRepository SubscriptionRepository
	VideoRepository        VideoRepository
	SocialRepository       SocialRepository
}

// NewStorages constructs all PostgreSQL-backed repositories over the shared
// database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		SubscriptionRepository: NewSubscriptionRepository(db, logger),
		VideoRepository:        NewVideoRepository(db, logger),
		SocialRepository:       NewSocialRepository(db, logger),
	}
}
