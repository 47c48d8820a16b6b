package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/utils"
	"github.com/vidora/vidora/models"
)

// tweetRequest is the JSON body of the tweet creation endpoint.
type tweetRequest struct {
	Content string `json:"content"`
}

// playlistRequest is the JSON body of the playlist creation endpoint.
type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	tweet, err := h.services.SocialService.PublishTweet(ctx, userID, req.Content)
	if err != nil {
		log.Err(err).Msg("tweet creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, tweet, http.StatusCreated)
}

func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tweets, err := h.services.SocialService.ListTweets(ctx, userID)
	if err != nil {
		log.Err(err).Msg("tweet listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, tweets, http.StatusOK)
}

func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.SocialService.CreatePlaylist(ctx, userID, req.Name, req.Description)
	if err != nil {
		log.Err(err).Msg("playlist creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusCreated)
}

func (h *Handler) getPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playlistID, err := strconv.ParseInt(chi.URLParam(r, "playlistID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.SocialService.GetPlaylist(ctx, playlistID)
	if err != nil {
		log.Err(err).Int64("playlist_id", playlistID).Msg("playlist lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusOK)
}

func (h *Handler) addVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	playlistID, err := strconv.ParseInt(chi.URLParam(r, "playlistID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}
	videoID, err := strconv.ParseInt(chi.URLParam(r, "videoID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	if err := h.services.SocialService.AddVideoToPlaylist(ctx, userID, playlistID, videoID); err != nil {
		log.Err(err).Int64("playlist_id", playlistID).Int64("video_id", videoID).Msg("adding video to playlist failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.LikeTargetKind(chi.URLParam(r, "kind"))
	targetID, err := strconv.ParseInt(chi.URLParam(r, "targetID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid target id", http.StatusBadRequest)
		return
	}

	liked, err := h.services.SocialService.ToggleLike(ctx, userID, kind, targetID)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Int64("target_id", targetID).Msg("like toggle failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]bool{"liked": liked}, http.StatusOK)
}

func (h *Handler) countLikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	kind := models.LikeTargetKind(chi.URLParam(r, "kind"))
	targetID, err := strconv.ParseInt(chi.URLParam(r, "targetID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid target id", http.StatusBadRequest)
		return
	}

	count, err := h.services.SocialService.CountLikes(ctx, kind, targetID)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Int64("target_id", targetID).Msg("like counting failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"count": count}, http.StatusOK)
}
