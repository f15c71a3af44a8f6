//go:build unit || e2e

package builder

import (
	"time"

	"pontomais/internal/domain/user"
)

type UserBuilder struct {
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	ProfileType  string
	JoinDate     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:        "Ana Souza",
		Email:       "test@example.com",
		Phone:       "(41) 99999-0000",
		Role:        "user",
		ProfileType: "imobiliaria",
		JoinDate:    time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	profile, err := user.NewProfileType(u.ProfileType)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(email, u.Name, u.Phone, profile, u.PasswordHash, u.JoinDate)
	if role == user.RoleAdmin {
		usr.Promote()
	}
	return usr, nil
}

func (u *UserBuilder) MustBuildDomain() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithProfileType(p string) *UserBuilder {
	u.ProfileType = p
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
