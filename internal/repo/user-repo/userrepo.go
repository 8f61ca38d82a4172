package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/internal/pg"
	"go.uber.org/zap"
)

const userColumns = "id, email, hashed_password, is_active, is_superuser, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.IsSuperuser, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.IsSuperuser, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, hashed_password, is_active, is_superuser)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.IsActive, user.IsSuperuser).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id OFFSET $1 LIMIT $2"
	rows, err := repo.db.Query(ctx, query, skip, limit)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.IsSuperuser, &user.CreatedAt); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// SetActive flips the activation flag and returns the updated user, or
// nil when no user has that id.
func (repo *Repository) SetActive(ctx context.Context, id int, active bool) (*domain.User, error) {
	query := `
		UPDATE users SET is_active = $2 WHERE id = $1
		RETURNING ` + userColumns
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id, active).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.IsSuperuser, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update user status", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
