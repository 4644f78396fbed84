package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"Filmoteka/internal/config"
	"Filmoteka/internal/middleware"
	"Filmoteka/internal/service"
)

// UserHandler обслуживает маршруты /auth/*.
type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewUserHandler(users *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Users: users, Logger: logger, Config: cfg}
}

func (h *UserHandler) tokenTTL() time.Duration {
	return time.Duration(h.Config.TokenTTLHours) * time.Hour
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register — POST /auth/register. Возвращает пользователя и токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password != req.ConfirmPassword {
		writeFail(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	user, err := h.Users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.BuildJWTString(user.ID, h.Config.AuthSecret, h.tokenTTL())
	if err != nil {
		h.Logger.Errorw("Register: failed to issue token", "user_id", user.ID, "error", err)
		writeFail(w, http.StatusInternalServerError, "server error")
		return
	}

	writeOK(w, http.StatusCreated, "user registered successfully", map[string]any{
		"user":  newUserView(user),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login — POST /auth/login. Выдаёт токен по паре email/пароль.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeFail(w, http.StatusBadRequest, "please enter email and password")
		return
	}

	user, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.BuildJWTString(user.ID, h.Config.AuthSecret, h.tokenTTL())
	if err != nil {
		h.Logger.Errorw("Login: failed to issue token", "user_id", user.ID, "error", err)
		writeFail(w, http.StatusInternalServerError, "server error")
		return
	}

	writeOK(w, http.StatusOK, "logged in successfully", map[string]any{
		"user":  newUserView(user),
		"token": token,
	})
}

// Profile — GET /auth/profile. Гард уже положил пользователя в контекст.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}
	writeOK(w, http.StatusOK, "user profile fetched successfully", newUserView(user))
}

type updateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdateProfile — PUT /auth/profile. Частичное обновление имени/аватара.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.UpdateProfile(r.Context(), userID, req.Name, req.ProfileImage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "user profile updated successfully", newUserView(user))
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ChangePassword — PUT /auth/change-password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
		writeFail(w, http.StatusBadRequest, "please enter old, new and confirm new password")
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		writeFail(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	if err := h.Users.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "password changed successfully", nil)
}

// DeleteAccount — DELETE /auth/delete-account.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	if err := h.Users.DeleteAccount(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "account deleted successfully", nil)
}
