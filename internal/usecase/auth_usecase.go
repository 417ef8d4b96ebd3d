package usecase

import (
	"errors"
	"fmt"
	"strings"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/jwt"
	"bountyboard/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type RegisterInput struct {
	Email      string
	Password   string
	OrgName    string
	OrgWebsite string
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type AuthUseCase interface {
	Register(input RegisterInput) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	GetUser(id string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   repo.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo repo.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:      email,
		Password:   string(hash),
		OrgName:    input.OrgName,
		OrgWebsite: input.OrgWebsite,
		Role:       entity.RoleBrand,
		IsActive:   true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user %s: %v", email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("User %s registered", email)
	return &AuthResult{Token: token, User: user}, nil
}

func (uc *authUseCase) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *authUseCase) GetUser(id string) (*entity.User, error) {
	return uc.userRepo.GetByID(id)
}
