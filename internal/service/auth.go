package service

import (
	"fmt"
	"strings"

	"tableside/internal/domain"
)

// defaultOperatorRestaurant is the restaurant every mocked operator manages.
const defaultOperatorRestaurant = "1"

type AuthMode string

const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

type Credentials struct {
	Mode            AuthMode    `json:"mode"`
	Role            domain.Role `json:"type"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirm_password"`
}

// AuthService is a stand-in for a real identity provider: it never checks a
// password, it only fabricates a user from the submitted form.
type AuthService struct {
	ids IDGenerator
}

func NewAuthService(ids IDGenerator) *AuthService {
	return &AuthService{ids: ids}
}

func (s *AuthService) Authenticate(creds Credentials) (*domain.User, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    s.ids.NewID(),
		Name:  strings.TrimSpace(creds.Name),
		Email: strings.TrimSpace(creds.Email),
		Phone: strings.TrimSpace(creds.Phone),
		Role:  creds.Role,
	}
	switch creds.Role {
	case domain.RoleCustomer:
		points := 0
		user.LoyaltyPoints = &points
	case domain.RoleRestaurant:
		user.RestaurantID = defaultOperatorRestaurant
	}
	return user, nil
}

func validateCredentials(creds Credentials) error {
	if creds.Mode != AuthLogin && creds.Mode != AuthSignup {
		return fmt.Errorf("%w: mode must be login or signup", ErrInvalidForm)
	}
	if !creds.Role.Valid() {
		return fmt.Errorf("%w: type must be customer or restaurant", ErrInvalidForm)
	}
	if strings.TrimSpace(creds.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidForm)
	}
	if creds.Mode == AuthSignup {
		if strings.TrimSpace(creds.Name) == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidForm)
		}
		if creds.Password != creds.ConfirmPassword {
			return fmt.Errorf("%w: passwords do not match", ErrInvalidForm)
		}
	}
	return nil
}
