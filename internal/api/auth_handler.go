package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mkessler/taskhub-api/internal/api/shared"
	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/platform/logger"
	"github.com/mkessler/taskhub-api/internal/service/auth"
	"github.com/mkessler/taskhub-api/internal/store"
)

// AuthHandler handles user registration and login requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Register handles user registration requests.
// It validates the request, hashes the password, and stores the new user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), nil)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	hashedPassword, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to register user", err)
		return
	}

	user, err := domain.NewUser(req.Username, hashedPassword)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to register user", err)
		return
	}

	log.Debug("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: "User registered successfully",
	})
}

// Login handles user login requests.
// On success it issues a signed bearer token. A missing user and a wrong
// password produce the same response so usernames cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to log in", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to log in", err)
		return
	}

	expiresAt := time.Now().UTC().Add(h.jwtService.TokenLifetime()).Format(time.RFC3339)
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
