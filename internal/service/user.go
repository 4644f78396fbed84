package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Filmoteka/internal/model"
	"Filmoteka/internal/repo"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserService инкапсулирует бизнес-логику работы с пользователями.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// validatePassword проверяет парольную политику: не короче 6 символов,
// хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(password string) []string {
	var violations []string
	if len(password) < 6 {
		violations = append(violations, "password must be at least 6 characters")
	}
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		violations = append(violations, "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return violations
}

// Register создаёт пользователя с захешированным паролем.
// Email нормализуется к нижнему регистру до проверки уникальности.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	var violations []string
	if strings.TrimSpace(name) == "" {
		violations = append(violations, "name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		violations = append(violations, "invalid email address")
	}
	violations = append(violations, validatePassword(password)...)
	if err := newValidationError(violations); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		// гонка между проверкой и вставкой — уникальный индекс последняя линия защиты
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет пару email/пароль. Несуществующий email и неверный пароль
// дают одинаковый ответ, чтобы не раскрывать наличие аккаунта.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает пользователя по id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile меняет имя и/или аватар. Непереданные поля не трогаются.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, profileImage *string) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return nil, newValidationError([]string{"name cannot be empty"})
		}
		user.Name = strings.TrimSpace(*name)
	}
	if profileImage != nil {
		user.ProfileImage = *profileImage
	}

	return s.repo.UpdateUser(ctx, user)
}

// ChangePassword перехеширует пароль. Новый пароль обязан отличаться от
// старого (требование политики) и проходить парольную политику.
func (s *UserService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if oldPassword == newPassword {
		return newValidationError([]string{"new password must differ from the old one"})
	}
	if err := newValidationError(validatePassword(newPassword)); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	_, err = s.repo.UpdateUser(ctx, user)
	return err
}

// DeleteAccount удаляет аккаунт. Записи фильмов пользователя остаются.
func (s *UserService) DeleteAccount(ctx context.Context, id int64) error {
	err := s.repo.DeleteUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
