package operator

import (
	"context"
	"fmt"
	"testing"

	"counselhub/models"
	"counselhub/utils"
)

type fakeOperatorRepo struct {
	byEmail map[string]*models.Operator
	byID    map[string]*models.Operator
	nextID  int
}

func newFakeOperatorRepo() *fakeOperatorRepo {
	return &fakeOperatorRepo{
		byEmail: make(map[string]*models.Operator),
		byID:    make(map[string]*models.Operator),
	}
}

func (r *fakeOperatorRepo) Create(ctx context.Context, op *models.Operator) error {
	r.nextID++
	op.ID = fmt.Sprintf("op-%d", r.nextID)
	r.byEmail[op.Email] = op
	r.byID[op.ID] = op
	return nil
}

func (r *fakeOperatorRepo) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	op, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("operator %s not found", id)
	}
	return op, nil
}

func (r *fakeOperatorRepo) GetByEmail(ctx context.Context, email string) (*models.Operator, error) {
	op, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("operator with email %s not found", email)
	}
	return op, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := &DefaultOperatorService{Repo: newFakeOperatorRepo()}
	ctx := context.Background()

	op, err := svc.Register(ctx, "Joy", "Joy@CounselHub.app", "s3cretpass", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if op.Email != "joy@counselhub.app" {
		t.Errorf("email not lowercased: %s", op.Email)
	}
	if op.Role != "operator" {
		t.Errorf("role = %s, want operator", op.Role)
	}
	if op.PasswordHash == "s3cretpass" {
		t.Error("password stored in plain text")
	}

	resp, err := svc.Authenticate(ctx, "joy@counselhub.app", "s3cretpass")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims["sub"] != op.ID {
		t.Errorf("token subject = %v, want %s", claims["sub"], op.ID)
	}
	if claims["role"] != "operator" {
		t.Errorf("token role = %v, want operator", claims["role"])
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := &DefaultOperatorService{Repo: newFakeOperatorRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Joy", "", "s3cretpass", ""); err == nil {
		t.Error("expected error for missing email")
	}
	if _, err := svc.Register(ctx, "Joy", "joy@counselhub.app", "short", ""); err == nil {
		t.Error("expected error for short password")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &DefaultOperatorService{Repo: newFakeOperatorRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Joy", "joy@counselhub.app", "s3cretpass", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "joy@counselhub.app", "anotherpass", ""); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	svc := &DefaultOperatorService{Repo: newFakeOperatorRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Joy", "joy@counselhub.app", "s3cretpass", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "joy@counselhub.app", "wrongpass"); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := svc.Authenticate(ctx, "nobody@counselhub.app", "s3cretpass"); err == nil {
		t.Error("expected error for unknown email")
	}
}
