package operator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	operatorRepo "counselhub/database/repository/operator"
	"counselhub/models"
	"counselhub/utils"
)

const tokenTTL = 24 * time.Hour

// OperatorService manages console accounts and login.
type OperatorService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.Operator, error)
	Authenticate(ctx context.Context, email, password string) (*models.OperatorAuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Operator, error)
}

// DefaultOperatorService is the production implementation.
type DefaultOperatorService struct {
	Repo operatorRepo.OperatorRepository
}

func (s *DefaultOperatorService) Register(ctx context.Context, name, email, password, role string) (*models.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, fmt.Errorf("email and a password of at least 8 characters are required")
	}
	if role != "admin" {
		role = "operator"
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	op := &models.Operator{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}
	return op, nil
}

func (s *DefaultOperatorService) Authenticate(ctx context.Context, email, password string) (*models.OperatorAuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	op, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(op.ID, op.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.OperatorAuthResponse{Token: token, Operator: *op}, nil
}

func (s *DefaultOperatorService) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	op, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("operator not found: %w", err)
	}
	return op, nil
}
