package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"echocast/internal/domain"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func TestService_Signup_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(userRepo, jwtSvc)

	user, err := service.Signup(context.Background(), SignupRequest{
		Email:    "a@x.com",
		Password: "pw1secure",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email)
	// the plaintext hash never leaves the service
	assert.Empty(t, user.PasswordHash)

	userRepo.AssertExpectations(t)
}

func TestService_Signup_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "exists@x.com").Return(true, nil)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Signup(context.Background(), SignupRequest{
		Email:    "exists@x.com",
		Password: "pw1secure",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Signup_HashesPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	var stored *domain.User
	userRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		copied := *u
		stored = &copied
	}).Return(nil)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Signup(context.Background(), SignupRequest{
		Email:    "a@x.com",
		Password: "pw1secure",
	})
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.NotEqual(t, "pw1secure", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1secure")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw2wrong")))
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           10,
		Email:        "user@x.com",
		PasswordHash: string(hashed),
	}

	userRepo.On("GetByEmail", mock.Anything, "user@x.com").Return(existing, nil)
	jwtSvc.On("GenerateToken", "user@x.com").Return("login-token", nil)

	service := NewService(userRepo, jwtSvc)

	token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@x.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           10,
		Email:        "user@x.com",
		PasswordHash: string(hashed),
	}

	userRepo.On("GetByEmail", mock.Anything, "user@x.com").Return(existing, nil)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@x.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@x.com",
		Password: "whatever",
	})

	// unknown email and wrong password surface identically
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_HashPassword_SaltedDigests(t *testing.T) {
	service := NewService(new(mockUserRepo), new(mockJWTService))

	h1, err := service.hashPassword("same-password")
	assert.NoError(t, err)
	h2, err := service.hashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h1), []byte("same-password")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h2), []byte("same-password")))
}
