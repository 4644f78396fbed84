package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Envelope — конверт ответа сервера.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do выполняет запрос. Токен сессии передаётся явно в каждый вызов —
// никакого неявного глобального состояния авторизации в клиенте нет.
func do(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as bearer auth.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return do(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with optional bearer auth.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return do(http.MethodGet, url, nil, token)
}

// Delete sends a DELETE request with bearer auth.
func Delete(url, token string) (*http.Response, []byte, error) {
	return do(http.MethodDelete, url, nil, token)
}

// ParseEnvelope разбирает конверт ответа.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("invalid server response: %w", err)
	}
	return &env, nil
}
