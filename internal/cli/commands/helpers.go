package commands

import (
	"encoding/json"
	"strings"

	"Filmoteka/internal/cli/api"
	fsrepo "Filmoteka/internal/cli/repo/fs"
	"Filmoteka/internal/config"
)

// endpoint склеивает базовый URL сервера и путь API.
func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// loadToken читает сохранённый токен сессии. Пустая строка — сессии нет.
func loadToken() string {
	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return ""
	}
	return token
}

// persistTokenFromBody извлекает токен из конверта login/register и сохраняет его.
func persistTokenFromBody(body []byte) error {
	env, err := api.ParseEnvelope(body)
	if err != nil {
		return err
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return err
	}
	if data.Token == "" {
		return errNoToken
	}
	return fsrepo.AuthFSStore{}.Save(data.Token)
}
