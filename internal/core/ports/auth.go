package ports

import (
	"context"

	"devdirectory/internal/core/domain"
)

type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (domain.TokenPayload, error)
}

type AuthService interface {
	Register(ctx context.Context, user *domain.User) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
