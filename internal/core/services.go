package core

import (
	"github.com/rodrigomedeirosbrazil/cms-api/internal/config"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/crypto"
)

type Services struct {
	User *UserService
	Auth *AuthService
}

func NewServices(db DB, cfg *config.Config) *Services {
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	return &Services{
		User: NewUserService(db, hasher),
		Auth: NewAuthService(db, hasher, cfg.JWTSecret, cfg.JWTIssuer),
	}
}
