package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrAvatarRequired        = errors.New("avatar file is required")
	ErrSelfSubscription      = errors.New("cannot subscribe to own channel")
	ErrNotPlaylistOwner      = errors.New("playlist belongs to another user")
	ErrUnsupportedLikeTarget = errors.New("unsupported like target kind")
)
