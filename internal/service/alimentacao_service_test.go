package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

func TestAlimentacaoServiceTipoDuplicado(t *testing.T) {
	animais := newFakeAnimalRepo()
	alimentacoes := newFakeAlimentacaoRepo()
	svc := NewAlimentacaoService(alimentacoes, animais)
	ctx := context.Background()

	a := &model.Animal{Nome: "Simba", Idade: 3, HabitatID: 1, EspecieID: 1, CuidadorID: 1}
	require.NoError(t, animais.Create(ctx, a))

	_, err := svc.Create(ctx, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 4.5, AnimalID: a.ID})
	require.NoError(t, err)

	// same food type for the same animal, case-insensitive
	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "carne", QuantidadeDiaria: 2, AnimalID: a.ID})
	assert.ErrorIs(t, err, repository.ErrConflict)

	// another type is fine
	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "Frutas", QuantidadeDiaria: 1, AnimalID: a.ID})
	assert.NoError(t, err)

	// same type for another animal is fine
	b := &model.Animal{Nome: "Nala", Idade: 2, HabitatID: 1, EspecieID: 1, CuidadorID: 1}
	require.NoError(t, animais.Create(ctx, b))
	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 3, AnimalID: b.ID})
	assert.NoError(t, err)
}

func TestAlimentacaoServiceUpdateKeepsOwnTipo(t *testing.T) {
	animais := newFakeAnimalRepo()
	alimentacoes := newFakeAlimentacaoRepo()
	svc := NewAlimentacaoService(alimentacoes, animais)
	ctx := context.Background()

	a := &model.Animal{Nome: "Simba", Idade: 3, HabitatID: 1, EspecieID: 1, CuidadorID: 1}
	require.NoError(t, animais.Create(ctx, a))

	carne, err := svc.Create(ctx, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 4.5, AnimalID: a.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "Frutas", QuantidadeDiaria: 1, AnimalID: a.ID})
	require.NoError(t, err)

	// changing only the quantity keeps the record's own type
	updated, err := svc.Update(ctx, carne.ID, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 6, AnimalID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, 6.0, updated.QuantidadeDiaria)

	// renaming onto the other record's type conflicts
	_, err = svc.Update(ctx, carne.ID, AlimentacaoInput{TipoComida: "frutas", QuantidadeDiaria: 6, AnimalID: a.ID})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestAlimentacaoServiceValidation(t *testing.T) {
	svc := NewAlimentacaoService(newFakeAlimentacaoRepo(), newFakeAnimalRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, AlimentacaoInput{TipoComida: "", QuantidadeDiaria: 1, AnimalID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 0, AnimalID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, AlimentacaoInput{TipoComida: "Carne", QuantidadeDiaria: 1, AnimalID: 9})
	assert.ErrorIs(t, err, repository.ErrAnimalNotFound)
}
