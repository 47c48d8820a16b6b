package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/service"
	"github.com/vidora/vidora/internal/store"
	"github.com/vidora/vidora/internal/utils"
	"github.com/vidora/vidora/models"
)

// register handles new account creation. The request is multipart/form-data:
// text fields full_name, email, username, password plus a mandatory avatar
// file part and an optional cover_image part.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	req := models.RegisterRequest{
		FullName: r.FormValue("full_name"),
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	avatar, err := formFileBlob(r, "avatar")
	if err != nil {
		log.Err(err).Msg("failed to read avatar part")
		http.Error(w, "failed to read avatar part", http.StatusBadRequest)
		return
	}
	cover, err := formFileBlob(r, "cover_image")
	if err != nil {
		log.Err(err).Msg("failed to read cover part")
		http.Error(w, "failed to read cover part", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req, avatar, cover)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrAvatarRequired):
			log.Err(err).Msg("invalid registration data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrIdentityAlreadyExists):
			log.Err(err).Msg("email or username already exists")
			http.Error(w, "email or username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registered, http.StatusCreated)
}

// login authenticates a user by email or username and delivers the token
// pair both in the JSON payload and as HttpOnly cookies.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, pair, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			http.Error(w, "no user was found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			http.Error(w, "wrong password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	setAuthCookies(w, pair)
	utils.WriteJSON(w, models.LoginResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, http.StatusOK)
}

// refresh exchanges a refresh token for a new pair. The token is taken from
// the JSON body when present, otherwise from the refreshToken cookie.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if r.Body != nil {
		// a missing or empty body is fine, the cookie is the fallback
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.RefreshToken == "" {
		if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}
	if req.RefreshToken == "" {
		log.Err(ErrNoRefreshToken).Send()
		http.Error(w, ErrNoRefreshToken.Error(), http.StatusUnauthorized)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token exchange rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	setAuthCookies(w, pair)
	utils.WriteJSON(w, pair, http.StatusOK)
}

// logout revokes the active session and clears the auth cookies.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		log.Err(err).Msg("logout failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	clearAuthCookies(w)
	w.WriteHeader(http.StatusOK)
}

// changePassword verifies the old password before installing the new one.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		log.Err(err).Msg("password change failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// currentUser returns the authenticated user's account record.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("current user lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateAccount applies a partial profile update (full name and/or email).
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.AuthService.UpdateAccountDetails(ctx, userID, req.FullName, req.Email)
	if err != nil {
		log.Err(err).Msg("account update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// updateAvatar replaces the user's avatar with the uploaded file part.
func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, "avatar", h.services.AuthService.UpdateAvatar)
}

// updateCover replaces the user's cover image with the uploaded file part.
func (h *Handler) updateCover(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, "cover_image", h.services.AuthService.UpdateCover)
}

func (h *Handler) updateMedia(w http.ResponseWriter, r *http.Request, field string, update func(ctx context.Context, userID int64, blob adapter.Blob) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	blob, err := formFileBlob(r, field)
	if err != nil {
		log.Err(err).Str("field", field).Msg("failed to read file part")
		http.Error(w, "failed to read file part", http.StatusBadRequest)
		return
	}

	updated, err := update(ctx, userID, blob)
	if err != nil {
		log.Err(err).Str("field", field).Msg("media update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
