package service

import (
	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/config"
	"github.com/vidora/vidora/internal/crypto"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/store"
)

// Services bundles every service implementation behind its interface so the
// handler layer receives one wired dependency at construction time.
type Services struct {
	AuthService    AuthService
	ChannelService ChannelService
	SocialService  SocialService
}

// NewServices constructs all services over the given storages, blob store,
// and cleanup queue.
func NewServices(storages *store.Storages, blobStore adapter.BlobStore, cleanup BlobCleanupQueue, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, blobStore, cleanup, cfg.Auth, logger),
		ChannelService: NewChannelService(storages.UserRepository, storages.SubscriptionRepository, storages.VideoRepository, logger),
		SocialService:  NewSocialService(storages.SocialRepository, logger),
	}
}
