package http

import (
	"errors"
	"net/http"

	"github.com/vidora/vidora/internal/service"
	"github.com/vidora/vidora/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAvatarRequired:          http.StatusBadRequest,
	service.ErrSelfSubscription:        http.StatusBadRequest,
	service.ErrNotPlaylistOwner:        http.StatusForbidden,
	service.ErrUnsupportedLikeTarget:   http.StatusBadRequest,

	store.ErrIdentityAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrRefreshTokenMismatch:  http.StatusUnauthorized,
	store.ErrNoVideoWasFound:       http.StatusNotFound,
	store.ErrNoTweetWasFound:       http.StatusNotFound,
	store.ErrNoPlaylistWasFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
