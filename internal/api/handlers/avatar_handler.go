package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/auth"
	"github.com/viremo/viremo-be/internal/services"
)

// Multipart uploads are read in memory up to this size before spilling to disk.
const maxAvatarMemory = 10 << 20 // 10 MiB

// AvatarHandler handles HTTP requests for the user's profile image.
type AvatarHandler struct {
	service services.AvatarServiceProvider
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(service services.AvatarServiceProvider) *AvatarHandler {
	return &AvatarHandler{service: service}
}

// Upload stores the uploaded image as the caller's avatar, replacing any
// previous one, and returns the public URL. No image type or size validation
// beyond the multipart memory cap.
func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.service.UploadAvatar(r.Context(), claims.UserID, contentType, file)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to upload avatar")
		http.Error(w, "Failed to upload avatar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"avatarUrl": url})
}

// Delete removes the caller's avatar file and clears the profile reference.
func (h *AvatarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	if err := h.service.DeleteAvatar(r.Context(), claims.UserID); err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to delete avatar")
		http.Error(w, "Failed to delete avatar", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
