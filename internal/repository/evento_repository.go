package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"zoo-api/internal/model"
)

// ErrEventoNotFound is returned when an event lookup fails.
var ErrEventoNotFound = errors.New("evento not found")

// ErrEnrollmentNotFound is returned when withdrawing a visitor that is
// not enrolled in the event.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// EventoRepo provides CRUD and enrollment queries for events.  Enrolling
// locks the evento row and re-counts enrollment inside the transaction,
// so two concurrent enrollments cannot both take the last slot; the
// (evento_id, visitante_id) primary key is the canonical duplicate guard.
type EventoRepo struct {
	db *sql.DB
}

func NewEventoRepo(db *sql.DB) *EventoRepo {
	return &EventoRepo{db: db}
}

const eventoCols = "id, nome, descricao, data_hora, capacidade_maxima, data_cadastro"

func scanEvento(row interface{ Scan(...any) error }) (*model.Evento, error) {
	var e model.Evento
	err := row.Scan(&e.ID, &e.Nome, &e.Descricao, &e.DataHora, &e.CapacidadeMaxima, &e.DataCadastro)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event and, when visitanteIDs is non-empty, its
// initial enrollment list in the same transaction.
func (r *EventoRepo) Create(ctx context.Context, e *model.Evento, visitanteIDs []uint64) (err error) {
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

	const q = `INSERT INTO eventos (nome, descricao, data_hora, capacidade_maxima, data_cadastro)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, e.Nome, e.Descricao, e.DataHora, e.CapacidadeMaxima, e.DataCadastro)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	if len(visitanteIDs) > e.CapacidadeMaxima {
		return ErrCapacityExceeded
	}
	err = insertEnrollmentsTx(ctx, tx, e.ID, visitanteIDs)
	return err
}

func insertEnrollmentsTx(ctx context.Context, tx *sql.Tx, eventoID uint64, visitanteIDs []uint64) error {
	if len(visitanteIDs) == 0 {
		return nil
	}
	q := "INSERT INTO evento_visitantes (evento_id, visitante_id) VALUES "
	args := make([]any, 0, len(visitanteIDs)*2)
	for i, vid := range visitanteIDs {
		if i > 0 {
			q += ","
		}
		q += "(?, ?)"
		args = append(args, eventoID, vid)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return asDuplicate(err, ErrConflict)
}

func (r *EventoRepo) GetByID(ctx context.Context, id uint64) (*model.Evento, error) {
	const q = "SELECT " + eventoCols + " FROM eventos WHERE id = ?"
	e, err := scanEvento(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventoNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventoRepo) ListAll(ctx context.Context) ([]*model.Evento, error) {
	return r.list(ctx, "SELECT "+eventoCols+" FROM eventos ORDER BY id")
}

func (r *EventoRepo) ListByNome(ctx context.Context, nome string) ([]*model.Evento, error) {
	const q = "SELECT " + eventoCols + " FROM eventos WHERE nome LIKE CONCAT('%', ?, '%') ORDER BY id"
	return r.list(ctx, q, nome)
}

// ListByPeriodo returns events scheduled inside [inicio, fim].
func (r *EventoRepo) ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]*model.Evento, error) {
	const q = "SELECT " + eventoCols + " FROM eventos WHERE data_hora BETWEEN ? AND ? ORDER BY data_hora"
	return r.list(ctx, q, inicio, fim)
}

// ListLotados returns events whose enrollment count reached capacity.
func (r *EventoRepo) ListLotados(ctx context.Context) ([]*model.Evento, error) {
	const q = `SELECT e.id, e.nome, e.descricao, e.data_hora, e.capacidade_maxima, e.data_cadastro
	           FROM eventos e
	           WHERE (SELECT COUNT(*) FROM evento_visitantes ev WHERE ev.evento_id = e.id) >= e.capacidade_maxima
	           ORDER BY e.id`
	return r.list(ctx, q)
}

// ListFuturos returns events scheduled after now.
func (r *EventoRepo) ListFuturos(ctx context.Context, now time.Time) ([]*model.Evento, error) {
	const q = "SELECT " + eventoCols + " FROM eventos WHERE data_hora > ? ORDER BY data_hora"
	return r.list(ctx, q, now)
}

func (r *EventoRepo) list(ctx context.Context, q string, args ...any) ([]*model.Evento, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Evento
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVisitantes returns the visitors enrolled in an event ordered by id.
func (r *EventoRepo) ListVisitantes(ctx context.Context, eventoID uint64) ([]*model.Visitante, error) {
	const q = `SELECT v.id, v.nome, v.cpf, v.data_nascimento, v.telefone, v.data_cadastro, v.user_id
	           FROM visitantes v
	           JOIN evento_visitantes ev ON ev.visitante_id = v.id
	           WHERE ev.evento_id = ?
	           ORDER BY v.id`
	rows, err := r.db.QueryContext(ctx, q, eventoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Visitante
	for rows.Next() {
		v := new(model.Visitante)
		if err := rows.Scan(&v.ID, &v.Nome, &v.CPF, &v.DataNascimento, &v.Telefone, &v.DataCadastro, &v.UserID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountInscritos returns the current enrollment count of an event.
func (r *EventoRepo) CountInscritos(ctx context.Context, eventoID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM evento_visitantes WHERE evento_id = ?", eventoID).Scan(&n)
	return n, err
}

// Update merges new values onto an existing event and, when
// visitanteIDs is non-nil, replaces the enrollment list.  The evento row
// is locked first so a capacity reduction below current enrollment fails
// with ErrConflict even under concurrent enrollments.
func (r *EventoRepo) Update(ctx context.Context, e *model.Evento, visitanteIDs []uint64) (err error) {
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

	var current int
	if err = tx.QueryRowContext(ctx,
		"SELECT capacidade_maxima FROM eventos WHERE id = ? FOR UPDATE", e.ID).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventoNotFound
		}
		return err
	}

	inscritos := len(visitanteIDs)
	if visitanteIDs == nil {
		if err = tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM evento_visitantes WHERE evento_id = ?", e.ID).Scan(&inscritos); err != nil {
			return err
		}
	}
	if e.CapacidadeMaxima < inscritos {
		return ErrConflict
	}

	const q = `UPDATE eventos
	           SET nome = ?, descricao = ?, data_hora = ?, capacidade_maxima = ?
	           WHERE id = ?`
	if _, err = tx.ExecContext(ctx, q, e.Nome, e.Descricao, e.DataHora, e.CapacidadeMaxima, e.ID); err != nil {
		return err
	}

	if visitanteIDs != nil {
		if _, err = tx.ExecContext(ctx,
			"DELETE FROM evento_visitantes WHERE evento_id = ?", e.ID); err != nil {
			return err
		}
		if err = insertEnrollmentsTx(ctx, tx, e.ID, visitanteIDs); err != nil {
			return err
		}
	}
	return nil
}

// Enroll adds a visitor to an event.  Runs entirely inside one
// transaction: the evento row is locked, enrollment is re-counted, and
// the insert hits the composite primary key, so neither an over-capacity
// nor a duplicate enrollment can be committed.
func (r *EventoRepo) Enroll(ctx context.Context, eventoID, visitanteID uint64) (err error) {
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

	var capacidade int
	if err = tx.QueryRowContext(ctx,
		"SELECT capacidade_maxima FROM eventos WHERE id = ? FOR UPDATE", eventoID).Scan(&capacidade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventoNotFound
		}
		return err
	}
	var inscritos int
	if err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM evento_visitantes WHERE evento_id = ?", eventoID).Scan(&inscritos); err != nil {
		return err
	}
	if inscritos >= capacidade {
		return ErrCapacityExceeded
	}
	if _, err = tx.ExecContext(ctx,
		"INSERT INTO evento_visitantes (evento_id, visitante_id) VALUES (?, ?)",
		eventoID, visitanteID); err != nil {
		return asDuplicate(err, ErrConflict)
	}
	return nil
}

// Withdraw removes a visitor's enrollment, returning
// ErrEnrollmentNotFound when there was none.
func (r *EventoRepo) Withdraw(ctx context.Context, eventoID, visitanteID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM evento_visitantes WHERE evento_id = ? AND visitante_id = ?",
		eventoID, visitanteID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

// Delete removes an event together with its enrollment rows.
func (r *EventoRepo) Delete(ctx context.Context, id uint64) (err error) {
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM evento_visitantes WHERE evento_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM eventos WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventoNotFound
	}
	return nil
}
