package handlers

import (
	"stockroom/internal/config"
	"stockroom/internal/repos"
	"stockroom/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	CatalogHandler *CatalogHandler
	Auth           *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	prodSvc := services.NewProductService(prodRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Prods: prodSvc},
		CatalogHandler: &CatalogHandler{Prods: prodSvc},
		Auth:           authSvc,
	}
}
