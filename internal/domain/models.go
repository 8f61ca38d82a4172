package domain

import "time"

// User lives in the relational credential store, not in the ledger
// engine. New users start inactive and must be activated by a superuser;
// the bootstrap superuser is created active at startup.
type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"hashed_password"`
	IsActive     bool      `db:"is_active"`
	IsSuperuser  bool      `db:"is_superuser"`
	CreatedAt    time.Time `db:"created_at"`
}
