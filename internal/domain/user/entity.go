package user

import (
	"strings"
	"time"

	"pontomais/internal/pkg/patch"

	"github.com/google/uuid"
)

const DefaultName = "Usuário"

type User struct {
	id           uuid.UUID
	name         string
	email        Email
	phone        string
	passwordHash string
	role         Role
	profileType  ProfileType
	joinDate     time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name, phone string, profile ProfileType, passwordHash string, joinDate time.Time) *User {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if profile == "" {
		profile = ProfileCorretorAutonomo
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        strings.TrimSpace(phone),
		passwordHash: passwordHash,
		role:         RoleUser,
		profileType:  profile,
		joinDate:     joinDate,
		updatedAt:    joinDate,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone, passwordHash string,
	role Role,
	profile ProfileType,
	joinDate, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		profileType:  profile,
		joinDate:     joinDate,
		updatedAt:    updatedAt,
	}
}

// Patch holds optional admin edits; nil leaves a field unchanged.
type Patch struct {
	Name        *string
	Phone       *string
	Role        *Role
	ProfileType *ProfileType
}

func (u *User) Apply(p Patch, now time.Time) error {
	role := patch.Coalesce(p.Role, u.role)
	if !role.IsValid() {
		return ErrInvalidRole
	}
	profile := patch.Coalesce(p.ProfileType, u.profileType)
	if !profile.IsValid() {
		return ErrInvalidProfileType
	}
	name := strings.TrimSpace(patch.Coalesce(p.Name, u.name))
	if name == "" {
		name = DefaultName
	}

	u.name = name
	u.phone = strings.TrimSpace(patch.Coalesce(p.Phone, u.phone))
	u.role = role
	u.profileType = profile
	u.updatedAt = now
	return nil
}

// Promote is used when seeding the administrator account.
func (u *User) Promote() {
	u.role = RoleAdmin
	u.profileType = ProfileAdmin
}

func (u *User) SetPasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
}

func (u *User) IsAdmin() bool            { return u.role == RoleAdmin }
func (u *User) HasPassword() bool        { return u.passwordHash != "" }
func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Name() string             { return u.name }
func (u *User) Email() Email             { return u.email }
func (u *User) Phone() string            { return u.phone }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) ProfileType() ProfileType { return u.profileType }
func (u *User) JoinDate() time.Time      { return u.joinDate }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
