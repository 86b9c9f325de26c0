package repository

import (
	"context"
	"database/sql"
	"errors"

	"zoo-api/internal/model"
)

// ErrFuncionarioNotFound is returned when a staff lookup fails.
var ErrFuncionarioNotFound = errors.New("funcionario not found")

// FuncionarioRepo provides CRUD queries for the generic staff records
// that cuidadores and veterinarios reference by id.
type FuncionarioRepo struct {
	db *sql.DB
}

func NewFuncionarioRepo(db *sql.DB) *FuncionarioRepo {
	return &FuncionarioRepo{db: db}
}

const funcionarioCols = "id, nome, cpf, cargo, setor, salario, user_id"

func scanFuncionario(row interface{ Scan(...any) error }) (*model.Funcionario, error) {
	var f model.Funcionario
	err := row.Scan(&f.ID, &f.Nome, &f.CPF, &f.Cargo, &f.Setor, &f.Salario, &f.UserID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FuncionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	const q = "INSERT INTO funcionarios (nome, cpf, cargo, setor, salario, user_id) VALUES (?, ?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, f.Nome, f.CPF, f.Cargo, f.Setor, f.Salario, f.UserID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

func (r *FuncionarioRepo) GetByID(ctx context.Context, id uint64) (*model.Funcionario, error) {
	const q = "SELECT " + funcionarioCols + " FROM funcionarios WHERE id = ?"
	f, err := scanFuncionario(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFuncionarioNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *FuncionarioRepo) ListAll(ctx context.Context) ([]*model.Funcionario, error) {
	return r.list(ctx, "SELECT "+funcionarioCols+" FROM funcionarios ORDER BY id")
}

func (r *FuncionarioRepo) ListByCargo(ctx context.Context, cargo string) ([]*model.Funcionario, error) {
	const q = "SELECT " + funcionarioCols + " FROM funcionarios WHERE LOWER(cargo) = LOWER(?) ORDER BY id"
	return r.list(ctx, q, cargo)
}

func (r *FuncionarioRepo) ListByNome(ctx context.Context, nome string) ([]*model.Funcionario, error) {
	const q = "SELECT " + funcionarioCols + " FROM funcionarios WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

func (r *FuncionarioRepo) list(ctx context.Context, q string, args ...any) ([]*model.Funcionario, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Funcionario
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsOutroComCPF reports whether another staff record already holds
// the digits-only CPF.
func (r *FuncionarioRepo) ExistsOutroComCPF(ctx context.Context, cpf string, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM funcionarios WHERE cpf = ? AND id <> ?",
		cpf, excludeID).Scan(&n)
	return n > 0, err
}

func (r *FuncionarioRepo) Update(ctx context.Context, f *model.Funcionario) error {
	const q = "UPDATE funcionarios SET nome = ?, cpf = ?, cargo = ?, setor = ?, salario = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, f.Nome, f.CPF, f.Cargo, f.Setor, f.Salario, f.ID)
	if err != nil {
		return asDuplicate(err, ErrDuplicateKey)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		scanErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM funcionarios WHERE id = ?", f.ID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrFuncionarioNotFound
		}
		return scanErr
	}
	return nil
}

// Delete removes a staff record and its linked credential record.  The
// delete is blocked with ErrConflict while a cuidador or veterinario
// still references it.
func (r *FuncionarioRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var userID sql.NullInt64
	if err = tx.QueryRowContext(ctx,
		"SELECT user_id FROM funcionarios WHERE id = ? FOR UPDATE", id).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFuncionarioNotFound
		}
		return err
	}
	var refs int
	if err = tx.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM cuidadores WHERE funcionario_id = ?)
		      + (SELECT COUNT(*) FROM veterinarios WHERE funcionario_id = ?)`,
		id, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM funcionarios WHERE id = ?", id); err != nil {
		return err
	}
	if userID.Valid {
		err = deleteUserTx(ctx, tx, uint64(userID.Int64))
	}
	return err
}
