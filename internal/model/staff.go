package model

// Funcionario is the generic staff record.  Cuidador and Veterinario do
// not extend it; they optionally reference it by id (composition).  CPF is
// stored digits-only and is unique across staff.
type Funcionario struct {
	ID      uint64  `json:"id"`                // funcionarios.id
	Nome    string  `json:"nome"`              // funcionarios.nome
	CPF     string  `json:"cpf"`               // funcionarios.cpf (11 digits)
	Cargo   string  `json:"cargo"`             // funcionarios.cargo (e.g. "Cuidador", "Veterinario")
	Setor   string  `json:"setor"`             // funcionarios.setor (e.g. "Mamiferos")
	Salario float64 `json:"salario"`           // funcionarios.salario
	UserID  *uint64 `json:"user_id,omitempty"` // funcionarios.user_id (nullable credential link)
}

// Cuidador is a caretaker responsible for zero or more animals.  A
// caretaker cannot be deleted while animals still reference it.
type Cuidador struct {
	ID            uint64  `json:"id"`                       // cuidadores.id
	Nome          string  `json:"nome"`                     // cuidadores.nome
	Especialidade string  `json:"especialidade"`            // cuidadores.especialidade
	Turno         string  `json:"turno"`                    // cuidadores.turno (e.g. "Manha", "Noite")
	Email         string  `json:"email"`                    // cuidadores.email
	FuncionarioID *uint64 `json:"funcionario_id,omitempty"` // cuidadores.funcionario_id (nullable staff link)
}

// Veterinario is veterinary staff.  CRMV is the license code, stored
// uppercase and unique.
type Veterinario struct {
	ID            uint64  `json:"id"`                       // veterinarios.id
	Nome          string  `json:"nome"`                     // veterinarios.nome
	CRMV          string  `json:"crmv"`                     // veterinarios.crmv
	Especialidade string  `json:"especialidade"`            // veterinarios.especialidade
	FuncionarioID *uint64 `json:"funcionario_id,omitempty"` // veterinarios.funcionario_id (nullable staff link)
}
