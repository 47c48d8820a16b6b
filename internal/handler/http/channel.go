package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/utils"
)

// channelProfile returns the channel named in the URL, enriched with
// subscriber statistics. The viewer, when authenticated, influences only
// the is_subscribed flag.
func (h *Handler) channelProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	// anonymous viewers get viewerID 0
	viewerID, _ := utils.GetUserIDFromContext(ctx)

	profile, err := h.services.ChannelService.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		log.Err(err).Str("username", username).Msg("channel profile request failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// subscribe creates the subscription edge to the channel named in the URL.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	h.changeSubscription(w, r, h.services.ChannelService.Subscribe)
}

// unsubscribe removes the subscription edge.
func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.changeSubscription(w, r, h.services.ChannelService.Unsubscribe)
}

func (h *Handler) changeSubscription(w http.ResponseWriter, r *http.Request, change func(ctx context.Context, subscriberID int64, username string) error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	username := chi.URLParam(r, "username")
	if err := change(ctx, userID, username); err != nil {
		log.Err(err).Str("username", username).Msg("subscription change failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// watchHistory returns the authenticated user's enriched watch history.
func (h *Handler) watchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	history, err := h.services.ChannelService.WatchHistory(ctx, userID)
	if err != nil {
		log.Err(err).Msg("watch history request failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

// recordWatch appends the video named in the URL to the user's history.
func (h *Handler) recordWatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	videoID, err := strconv.ParseInt(chi.URLParam(r, "videoID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	if err := h.services.ChannelService.RecordWatch(ctx, userID, videoID); err != nil {
		log.Err(err).Int64("video_id", videoID).Msg("recording watch failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}
