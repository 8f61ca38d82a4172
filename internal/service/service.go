package service

import (
	"time"

	"github.com/tigerbridge/tigerbridge/internal/repo"
	"github.com/tigerbridge/tigerbridge/internal/service/authservice"
	"github.com/tigerbridge/tigerbridge/internal/service/ledgerservice"
	"github.com/tigerbridge/tigerbridge/internal/tb"
	pkgauth "github.com/tigerbridge/tigerbridge/pkg/auth"
)

type Services struct {
	AuthService   *authservice.Service
	LedgerService *ledgerservice.Service
}

func New(repo *repo.Repositories, engine tb.Engine, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	return &Services{
		AuthService:   authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, tokenTTL),
		LedgerService: ledgerservice.New(engine),
	}
}
