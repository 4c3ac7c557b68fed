package auth

import (
	"context"
	"errors"
	"strings"

	"echocast/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(subject string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Signup registers a new account. The email must not be taken; the password is
// stored only as a bcrypt digest.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-check; the unique
		// constraint is the authority.
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.Email)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite reports constraint violations as plain error text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
