package services

import (
	"context"
	"strings"

	"jobportal/internal/api"
	"jobportal/internal/dtos"
	"jobportal/internal/validation"
)

// AuthService validates the auth forms and exchanges them with the
// backend. Validation failures come back as accumulated error lists;
// backend rejections come back as api sentinel errors.
type AuthService struct {
	API       *api.Client
	Validator *validation.AuthValidator
}

func NewAuthService(client *api.Client) *AuthService {
	return &AuthService{
		API:       client,
		Validator: validation.NewAuthValidator(),
	}
}

// Login validates the form and, when it passes, asks the backend for a
// session.
func (s *AuthService) Login(ctx context.Context, form dtos.LoginForm) (*api.Session, validation.Result, error) {
	result := s.Validator.ValidateLoginData(form.Email, form.Password)
	if !result.Valid {
		return nil, result, nil
	}
	sess, err := s.API.Login(ctx, strings.TrimSpace(form.Email), form.Password)
	return sess, result, err
}

// Register validates the form and creates an applicant account.
func (s *AuthService) Register(ctx context.Context, form dtos.RegisterForm) (validation.Result, error) {
	result := s.Validator.ValidateRegistrationData(form.Email, form.Password, form.Forename, form.Surname)
	if !result.Valid {
		return result, nil
	}
	err := s.API.Register(ctx,
		strings.TrimSpace(form.Email), form.Password,
		strings.TrimSpace(form.Forename), strings.TrimSpace(form.Surname))
	return result, err
}
