package repo

import (
	"github.com/tigerbridge/tigerbridge/internal/pg"
	userrepo "github.com/tigerbridge/tigerbridge/internal/repo/user-repo"
	"github.com/tigerbridge/tigerbridge/internal/service/authservice"
)

type Repositories struct {
	UserRepo authservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo: userrepo.New(conn),
	}
}
