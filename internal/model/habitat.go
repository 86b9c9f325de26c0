package model

import "time"

// Habitat is an enclosure with a finite animal capacity.  The occupancy
// invariant (occupants <= CapacidadeAnimal) is enforced by the repository
// inside the same transaction that inserts or moves an animal.
//
// Fields:
//  ID               – primary key identifier.
//  Nome             – unique habitat name.
//  Tipo             – enclosure type (e.g. "Aberto", "Aquatico").
//  CapacidadeAnimal – maximum number of animals, always positive.
type Habitat struct {
	ID               uint64    `json:"id"`                // habitats.id
	Nome             string    `json:"nome"`              // habitats.nome
	Tipo             string    `json:"tipo"`              // habitats.tipo
	CapacidadeAnimal int       `json:"capacidade_animal"` // habitats.capacidade_animal
	CreatedAt        time.Time `json:"created_at"`        // habitats.created_at
	UpdatedAt        time.Time `json:"updated_at"`        // habitats.updated_at
}

// Especie is the taxonomic classification of an animal.  Nome is unique;
// the remaining taxonomy fields are optional.
type Especie struct {
	ID             uint64 `json:"id"`              // especies.id
	Nome           string `json:"nome"`            // especies.nome
	Descricao      string `json:"descricao"`       // especies.descricao
	NomeCientifico string `json:"nome_cientifico"` // especies.nome_cientifico
	Familia        string `json:"familia"`         // especies.familia
	Ordem          string `json:"ordem"`           // especies.ordem
	Classe         string `json:"classe"`          // especies.classe
}
