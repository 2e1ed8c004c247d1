package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUseCase interface {
	Register(username, email, password string) (*entity.User, error)
	Login(username, password string) (*entity.User, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a user with a bcrypt-hashed credential. It does not
// establish a session; the caller stays anonymous until login.
func (uc *authUseCase) Register(username, email, password string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUserExists
	}
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
