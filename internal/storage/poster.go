package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ErrUnsupportedType возвращается при попытке сохранить не-изображение.
var ErrUnsupportedType = errors.New("unsupported media type")

// allowedContentTypes — принимаемые типы постеров.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// AllowedContentType сообщает, принимается ли такой Content-Type постера.
func AllowedContentType(ct string) bool {
	_, ok := allowedContentTypes[strings.ToLower(strings.TrimSpace(ct))]
	return ok
}

// PosterStore — контракт внешнего хранилища постеров.
// Store возвращает публичный URL сохранённого объекта.
// Delete удаляет объект по ранее выданному URL, best-effort.
type PosterStore interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, rawURL string) error
}

// keyFromURL детерминированно восстанавливает ключ объекта из публичного URL:
// последний сегмент пути без расширения, с префиксом каталога постеров.
// Если из URL ключ не извлекается, возвращает ok=false — вызывающий код
// трактует это как no-op, а не как ошибку.
func keyFromURL(rawURL, folder string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "", false
	}
	if i := strings.LastIndex(last, "."); i > 0 {
		last = last[:i]
	}
	return folder + "/" + last, true
}
