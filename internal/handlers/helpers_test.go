package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"Filmoteka/internal/config"
	"Filmoteka/internal/handlers"
	"Filmoteka/internal/middleware"
	"Filmoteka/internal/model"
	"Filmoteka/internal/repo"
	"Filmoteka/internal/service"
	"Filmoteka/internal/storage"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) Create(ctx context.Context, mv *model.Movie) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	args := m.Called(ctx, title)
	if v, ok := args.Get(0).(*model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.MovieRepository = (*mockMovieRepo)(nil)

type mockPosterStore struct{ mock.Mock }

func (m *mockPosterStore) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockPosterStore) Delete(ctx context.Context, rawURL string) error {
	return m.Called(ctx, rawURL).Error(0)
}

var _ storage.PosterStore = (*mockPosterStore)(nil)

// --- Helpers ---
const testSecret = "test-secret"

func newTestRouter(t *testing.T, ur *mockUserRepo, mr *mockMovieRepo, ps *mockPosterStore) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, TokenTTLHours: 1, PosterMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	movieSvc := service.NewMovieService(mr, ps, logger)

	h := handlers.NewHandler(userSvc, movieSvc, logger, cfg)
	return h.Router
}

// addBearer выпускает валидный токен и вешает его на запрос.
func addBearer(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	token, err := middleware.BuildJWTString(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// expectAuth настраивает мок на резолв пользователя гардом.
func expectAuth(ur *mockUserRepo, user *model.User) {
	ur.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
