package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
)

// signupRequest is the signup payload: the public account fields plus the
// plaintext password, which exists only for the duration of the request.
type signupRequest struct {
	models.User
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Email string `json:"email"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.Register(ctx, req.User, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("password is too short")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Password must be at least 6 characters long"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User already registered"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to sign up"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User created successfully."}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to log in"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to log in"}, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Message: "Login successful", User: foundUser}, http.StatusOK)
}

func (h *Handler) userDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if !h.requireOwnAccount(w, r, email) {
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("email", email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to fetch user details"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) updateLogoutTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if !h.requireOwnAccount(w, r, req.Email) {
		return
	}

	if err := h.services.AuthService.Logout(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("email", req.Email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during logout")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to update logout time"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Logout time updated successfully."}, http.StatusOK)
}

// requireOwnAccount rejects requests whose authenticated token subject does
// not match the account addressed by the request. Writes the response and
// returns false on rejection.
func (h *Handler) requireOwnAccount(w http.ResponseWriter, r *http.Request, email string) bool {
	log := logger.FromRequest(r)

	tokenEmail, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated email in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return false
	}

	if email != tokenEmail {
		log.Error().
			Str("token_email", tokenEmail).
			Str("requested_email", email).
			Msg("attempt to access another account's data")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrForeignAccount.Error()}, http.StatusForbidden)
		return false
	}

	return true
}
