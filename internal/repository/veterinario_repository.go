package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrVeterinarioNotFound is returned when a veterinarian lookup fails.
var ErrVeterinarioNotFound = errors.New("veterinario not found")

// VeterinarioRepo provides CRUD queries for veterinarians.  CRMV is
// unique; the value is stored uppercase-normalized by the service layer.
type VeterinarioRepo struct {
	db *sql.DB
}

func NewVeterinarioRepo(db *sql.DB) *VeterinarioRepo {
	return &VeterinarioRepo{db: db}
}

const veterinarioCols = "id, nome, crmv, especialidade, funcionario_id"

func scanVeterinario(row interface{ Scan(...any) error }) (*model.Veterinario, error) {
	var v model.Veterinario
	err := row.Scan(&v.ID, &v.Nome, &v.CRMV, &v.Especialidade, &v.FuncionarioID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VeterinarioRepo) Create(ctx context.Context, v *model.Veterinario) error {
	const q = "INSERT INTO veterinarios (nome, crmv, especialidade, funcionario_id) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, v.Nome, v.CRMV, v.Especialidade, v.FuncionarioID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

func (r *VeterinarioRepo) GetByID(ctx context.Context, id uint64) (*model.Veterinario, error) {
	const q = "SELECT " + veterinarioCols + " FROM veterinarios WHERE id = ?"
	v, err := scanVeterinario(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVeterinarioNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VeterinarioRepo) ListAll(ctx context.Context) ([]*model.Veterinario, error) {
	return r.list(ctx, "SELECT "+veterinarioCols+" FROM veterinarios ORDER BY id")
}

func (r *VeterinarioRepo) ListByEspecialidade(ctx context.Context, especialidade string) ([]*model.Veterinario, error) {
	const q = "SELECT " + veterinarioCols + " FROM veterinarios WHERE LOWER(especialidade) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, especialidade)
}

func (r *VeterinarioRepo) ListByNome(ctx context.Context, nome string) ([]*model.Veterinario, error) {
	const q = "SELECT " + veterinarioCols + " FROM veterinarios WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

func (r *VeterinarioRepo) list(ctx context.Context, q string, args ...any) ([]*model.Veterinario, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Veterinario
	for rows.Next() {
		v, err := scanVeterinario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsOutroComCRMV reports whether another veterinarian already holds
// the normalized license code.
func (r *VeterinarioRepo) ExistsOutroComCRMV(ctx context.Context, crmv string, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM veterinarios WHERE crmv = ? AND id <> ?",
		crmv, excludeID).Scan(&n)
	return n > 0, err
}

func (r *VeterinarioRepo) Update(ctx context.Context, v *model.Veterinario) error {
	const q = "UPDATE veterinarios SET nome = ?, crmv = ?, especialidade = ?, funcionario_id = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, v.Nome, v.CRMV, v.Especialidade, v.FuncionarioID, v.ID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		scanErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM veterinarios WHERE id = ?", v.ID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrVeterinarioNotFound
		}
		return scanErr
	}
	return nil
}

func (r *VeterinarioRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM veterinarios WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVeterinarioNotFound
	}
	return nil
}
