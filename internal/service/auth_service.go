package service

import (
	"errors"
	"fmt"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/pkg/jwt"
	"go-invoice-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin cashier"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(req *RegisterRequest) (*LoginResponse, error)
	GetMe(userID uuid.UUID) (*model.UserResponse, error)
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) (string, error)
	GetAllUsers() ([]model.UserResponse, error)
	UpdateUserStatus(userID uuid.UUID, isActive bool) (*model.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperr.ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, apperr.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Register(req *RegisterRequest) (*LoginResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrDuplicate, req.Email)
	}

	role := model.UserRole(req.Role)
	if role != model.RoleAdmin {
		role = model.RoleCashier
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) GetMe(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdatePassword verifies the current password, stores the new hash, and
// issues a fresh token.
func (s *authService) UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
	}

	if !user.CheckPassword(currentPassword) {
		return "", apperr.ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return "", fmt.Errorf("%w: new password must be at least 6 characters", apperr.ErrInvalidInput)
	}

	if err := user.SetPassword(newPassword); err != nil {
		return "", err
	}
	if err := s.userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		return "", err
	}

	return jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
}

func (s *authService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *authService) UpdateUserStatus(userID uuid.UUID, isActive bool) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
	}

	if err := s.userRepo.UpdateStatus(user.ID, isActive); err != nil {
		return nil, err
	}

	user.IsActive = isActive
	resp := user.ToResponse()
	return &resp, nil
}
