package model

import "time"

// Visitante is a registered park visitor.  CPF is stored digits-only and
// unique.  A visitor may be enrolled in zero or more eventos through the
// `evento_visitantes` join table and optionally links to a credential
// record for login.
type Visitante struct {
	ID             uint64    `json:"id"`                // visitantes.id
	Nome           string    `json:"nome"`              // visitantes.nome
	CPF            string    `json:"cpf"`               // visitantes.cpf (11 digits)
	DataNascimento time.Time `json:"data_nascimento"`   // visitantes.data_nascimento
	Telefone       string    `json:"telefone"`          // visitantes.telefone
	DataCadastro   time.Time `json:"data_cadastro"`     // visitantes.data_cadastro
	UserID         *uint64   `json:"user_id,omitempty"` // visitantes.user_id (nullable credential link)
}

// Evento is a scheduled, capacity-bounded event visitors can enroll in.
// Enrollment count never exceeds CapacidadeMaxima; the repository
// re-checks the bound inside the enrolling transaction.
type Evento struct {
	ID               uint64    `json:"id"`                // eventos.id
	Nome             string    `json:"nome"`              // eventos.nome
	Descricao        string    `json:"descricao"`         // eventos.descricao
	DataHora         time.Time `json:"data_hora"`         // eventos.data_hora
	CapacidadeMaxima int       `json:"capacidade_maxima"` // eventos.capacidade_maxima
	DataCadastro     time.Time `json:"data_cadastro"`     // eventos.data_cadastro
}
