package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"zoo-api/internal/model"
)

// ErrUserNotFound is returned when a credential lookup fails.
var ErrUserNotFound = errors.New("user not found")

// UserRepo persists credential records and their role links.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user with the given role names in one transaction.
// The username is lowercased and trimmed; a collision surfaces as
// ErrDuplicateKey.  Unknown role names are an error: roles are seeded at
// startup and never created on demand here.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string, roles []string) (id uint64, err error) {
	username = strings.ToLower(strings.TrimSpace(username))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)", username, passwordHash)
	if err != nil {
		return 0, asDuplicate(err, ErrDuplicateKey)
	}
	insertID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	id = uint64(insertID)

	for _, role := range roles {
		var roleID uint8
		if err = tx.QueryRowContext(ctx,
			"SELECT id FROM roles WHERE name = ?", role).Scan(&roleID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = errors.New("unknown role: " + role)
			}
			return 0, err
		}
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)", id, roleID); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// GetByUsername fetches a user and its role names by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.Roles, err = r.rolesOf(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user and its role names by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM users WHERE id = ?",
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.Roles, err = r.rolesOf(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) rolesOf(ctx context.Context, userID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ro.name FROM roles ro
		 JOIN user_roles ur ON ur.role_id = ro.id
		 WHERE ur.user_id = ? ORDER BY ro.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

// deleteUserTx removes a user and its role links and refresh tokens.
// Called from visitante/funcionario deletes inside their transaction.
func deleteUserTx(ctx context.Context, tx *sql.Tx, userID uint64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM refresh_tokens WHERE user_id = ?", userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM user_roles WHERE user_id = ?", userID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	return err
}
