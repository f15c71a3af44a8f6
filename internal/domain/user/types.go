package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type ProfileType string

const (
	ProfileImobiliaria      ProfileType = "imobiliaria"
	ProfileConstrutora      ProfileType = "construtora"
	ProfileCorretorAutonomo ProfileType = "corretor_autonomo"
	ProfileEstabelecimento  ProfileType = "estabelecimento"
	ProfileAdmin            ProfileType = "admin"
)

func (p ProfileType) String() string {
	return string(p)
}

func (p ProfileType) IsValid() bool {
	switch p {
	case ProfileImobiliaria, ProfileConstrutora, ProfileCorretorAutonomo, ProfileEstabelecimento, ProfileAdmin:
		return true
	default:
		return false
	}
}

// NewProfileType falls back to corretor_autonomo for an empty value.
func NewProfileType(s string) (ProfileType, error) {
	if s == "" {
		return ProfileCorretorAutonomo, nil
	}
	p := ProfileType(s)
	if !p.IsValid() {
		return "", ErrInvalidProfileType
	}
	return p, nil
}
