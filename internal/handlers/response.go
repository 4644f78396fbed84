package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"Filmoteka/internal/service"
	"Filmoteka/internal/storage"
)

// Response — единый конверт ответа API.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeOK(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeServiceError переводит ошибку бизнес-логики в HTTP-статус и конверт.
// Статусы нормализованы: 400 валидация, 401 аутентификация, 403 не владелец,
// 404 нет записи, 409 конфликт уникальности, 415 не-изображение.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "validation failed",
			Error:   strings.Join(vErr.Violations, "; "),
		})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrTitleTaken):
		writeFail(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrForbidden):
		writeFail(w, http.StatusForbidden, "only the creator can modify this movie")
	case errors.Is(err, service.ErrNotFound):
		writeFail(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrUnsupportedType):
		writeFail(w, http.StatusUnsupportedMediaType, "only JPG, JPEG, PNG and WEBP files are allowed")
	default:
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "server error",
			Error:   err.Error(),
		})
	}
}
