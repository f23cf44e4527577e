package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
)

func (h *Handler) saveChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var chat models.Chat
	if err := json.NewDecoder(r.Body).Decode(&chat); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if !h.requireOwnAccount(w, r, chat.Email) {
		return
	}

	_, created, err := h.services.ChatService.SaveChat(ctx, chat)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during chat save")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to save chat history"}, http.StatusInternalServerError)
			return
		}
	}

	if created {
		utils.WriteJSON(w, models.MessageResponse{Message: "Chat history saved successfully."}, http.StatusCreated)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: "Chat history updated successfully."}, http.StatusOK)
}

func (h *Handler) getPreviousChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if !h.requireOwnAccount(w, r, email) {
		return
	}

	chats, err := h.services.ChatService.ListChats(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrChatNotFound):
			log.Err(err).Str("email", email).Msg("no chat history found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "No chat history found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during chat listing")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to fetch previous chats"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ChatListResponse{Chats: chats}, http.StatusOK)
}

func (h *Handler) getChatHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	sessionID := r.URL.Query().Get("sessionId")
	if !h.requireOwnAccount(w, r, email) {
		return
	}

	chat, err := h.services.ChatService.GetChat(ctx, email, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrChatNotFound):
			log.Err(err).
				Str("email", email).
				Str("session_id", sessionID).
				Msg("chat history not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Chat history not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during chat lookup")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to fetch chat history"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, chat, http.StatusOK)
}
