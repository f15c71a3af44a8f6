package response

import (
	"time"

	"pontomais/internal/usecase/queries"
)

type AuthResponse struct {
	AccessToken string            `json:"accessToken"`
	ExpiresIn   int64             `json:"expiresIn"`
	User        *queries.UserView `json:"user"`
}

func NewAuthResponse(token string, expiresIn time.Duration, u *queries.UserView) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(expiresIn.Seconds()),
		User:        u,
	}
}
