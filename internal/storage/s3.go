package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"Filmoteka/internal/config"
)

// posterFolder — префикс ключей постеров в bucket'е.
const posterFolder = "movie-posters"

// S3Store хранит постеры в S3-совместимом хранилище (AWS или MinIO).
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string // базовый URL, по которому объекты доступны на чтение
}

// NewS3Store собирает клиента S3 из конфигурации приложения.
// Для MinIO задаётся BaseEndpoint и path-style адресация.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Store кладёт постер в bucket и возвращает его публичный URL.
// Ключ — случайный uuid без расширения, тип отдаётся через Content-Type.
func (s *S3Store) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if !AllowedContentType(contentType) {
		return "", ErrUnsupportedType
	}

	key := posterFolder + "/" + uuid.NewString()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// Delete удаляет объект по публичному URL. Если ключ из URL не извлекается —
// ничего не делает и не считает это ошибкой.
func (s *S3Store) Delete(ctx context.Context, rawURL string) error {
	key, ok := keyFromURL(rawURL, posterFolder)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

var _ PosterStore = (*S3Store)(nil)
