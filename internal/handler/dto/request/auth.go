package request

import (
	"pontomais/internal/domain/user"
)

type RegisterRequest struct {
	Name        string `json:"name" binding:"max=120"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"max=40"`
	Password    string `json:"password" binding:"omitempty,min=8"`
	ProfileType string `json:"profileType" binding:"omitempty,oneof=imobiliaria construtora corretor_autonomo estabelecimento"`
}

type Registration struct {
	Email       user.Email
	Password    user.Password
	ProfileType user.ProfileType
	Name        string
	Phone       string
}

func (r *RegisterRequest) ToDomain() (Registration, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Registration{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return Registration{}, err
	}
	profile, err := user.NewProfileType(r.ProfileType)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Email:       email,
		Password:    pw,
		ProfileType: profile,
		Name:        r.Name,
		Phone:       r.Phone,
	}, nil
}

// Password is checked only for accounts that set one.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToDomain() (user.Email, error) {
	return user.NewEmail(r.Email)
}
