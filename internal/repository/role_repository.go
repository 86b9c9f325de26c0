package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
)

// RoleRepo manages the roles table.
type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

// EnsureSeeded idempotently creates each canonical role name if absent.
// Runs once at process start; a concurrent replica inserting the same
// name is absorbed by the unique constraint.
func (r *RoleRepo) EnsureSeeded(ctx context.Context, names []string) error {
	for _, name := range names {
		var id uint8
		err := r.db.QueryRowContext(ctx, "SELECT id FROM roles WHERE name = ?", name).Scan(&id)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if _, err := r.db.ExecContext(ctx, "INSERT INTO roles (name) VALUES (?)", name); err != nil {
			if errors.Is(asDuplicate(err, ErrDuplicateKey), ErrDuplicateKey) {
				continue
			}
			return err
		}
		log.Printf("seeded role %s", name)
	}
	return nil
}
