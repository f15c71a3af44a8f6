package request

import (
	"pontomais/internal/domain/user"
)

type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=120"`
	Phone       *string `json:"phone" binding:"omitempty,max=40"`
	Role        *string `json:"role" binding:"omitempty,oneof=user admin"`
	ProfileType *string `json:"profileType" binding:"omitempty,oneof=imobiliaria construtora corretor_autonomo estabelecimento admin"`
}

func (r *UpdateUserRequest) ToDomain() (user.Patch, error) {
	p := user.Patch{Name: r.Name, Phone: r.Phone}
	if r.Role != nil {
		role, err := user.NewRole(*r.Role)
		if err != nil {
			return user.Patch{}, err
		}
		p.Role = &role
	}
	if r.ProfileType != nil {
		pt, err := user.NewProfileType(*r.ProfileType)
		if err != nil {
			return user.Patch{}, err
		}
		p.ProfileType = &pt
	}
	return p, nil
}
