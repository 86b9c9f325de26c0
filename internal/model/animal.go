package model

// Animal represents a row in the `animais` table.  Every animal lives in
// exactly one habitat, belongs to one species and is assigned to one
// caretaker.  Feeding records reference the animal from the
// `alimentacoes` table and are removed together with it.
//
// Fields:
//  ID         – primary key identifier.
//  Nome       – animal name.
//  Idade      – age in years, never negative.
//  HabitatID  – habitat where the animal lives.
//  EspecieID  – species classification.
//  CuidadorID – caretaker responsible for the animal.
type Animal struct {
	ID         uint64 `json:"id"`          // animais.id
	Nome       string `json:"nome"`        // animais.nome
	Idade      int    `json:"idade"`       // animais.idade
	HabitatID  uint64 `json:"habitat_id"`  // animais.habitat_id
	EspecieID  uint64 `json:"especie_id"`  // animais.especie_id
	CuidadorID uint64 `json:"cuidador_id"` // animais.cuidador_id
}

// Alimentacao is a feeding-plan record tied to exactly one animal.  The
// pair (animal, food type) is unique: an animal never has two plans for
// the same food.
type Alimentacao struct {
	ID               uint64  `json:"id"`                // alimentacoes.id
	TipoComida       string  `json:"tipo_comida"`       // alimentacoes.tipo_comida
	QuantidadeDiaria float64 `json:"quantidade_diaria"` // alimentacoes.quantidade_diaria (kg/day)
	AnimalID         uint64  `json:"animal_id"`         // alimentacoes.animal_id
}
