//go:build unit || e2e

package builder

import (
	reqdto "pontomais/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	ProfileType string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:        "Ana Souza",
		Email:       "ana@example.com",
		Phone:       "(11) 98888-7777",
		Password:    "password123",
		ProfileType: "corretor_autonomo",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithoutPassword() *AuthBuilder {
	a.Password = ""
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Password:    a.Password,
		ProfileType: a.ProfileType,
	}
}
