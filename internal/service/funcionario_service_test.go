package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-api/internal/model"
	"zoo-api/internal/repository"
)

func TestFuncionarioServiceCreate(t *testing.T) {
	funcionarios := newFakeFuncionarioRepo()
	users := newFakeUserRepo()
	svc := NewFuncionarioService(funcionarios, users, 4)
	ctx := context.Background()

	f, err := svc.Create(ctx, FuncionarioInput{
		Nome: "Carlos", CPF: "987.654.321-00", Cargo: "tratador", Setor: "aves", Salario: 3200,
		Username: "carlos", Password: "segredo1",
	})
	require.NoError(t, err)
	assert.Equal(t, "98765432100", f.CPF)
	require.NotNil(t, f.UserID)

	u, err := users.GetByID(ctx, *f.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{model.RoleFuncionario}, u.Roles)

	// duplicate CPF, different formatting
	_, err = svc.Create(ctx, FuncionarioInput{Nome: "Outro", CPF: "98765432100", Cargo: "guia"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	// account is optional
	semConta, err := svc.Create(ctx, FuncionarioInput{Nome: "Paula", CPF: "111.222.333-44", Cargo: "guia"})
	require.NoError(t, err)
	assert.Nil(t, semConta.UserID)

	// username without password
	_, err = svc.Create(ctx, FuncionarioInput{Nome: "João", CPF: "555.666.777-88", Cargo: "guia", Username: "joao"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFuncionarioServiceRolesPorCargo(t *testing.T) {
	assert.Equal(t, []string{model.RoleFuncionario}, rolesForCargo("guia"))
	assert.Equal(t, []string{model.RoleFuncionario, model.RoleCuidador}, rolesForCargo("Cuidador de répteis"))
	assert.Equal(t, []string{model.RoleFuncionario, model.RoleVeterinario}, rolesForCargo("Veterinária chefe"))

	funcionarios := newFakeFuncionarioRepo()
	users := newFakeUserRepo()
	svc := NewFuncionarioService(funcionarios, users, 4)
	ctx := context.Background()

	f, err := svc.Create(ctx, FuncionarioInput{
		Nome: "Ana", CPF: "222.333.444-55", Cargo: "Veterinária",
		Username: "ana", Password: "segredo1",
	})
	require.NoError(t, err)
	require.NotNil(t, f.UserID)
	u, err := users.GetByID(ctx, *f.UserID)
	require.NoError(t, err)
	assert.Contains(t, u.Roles, model.RoleVeterinario)
}

func TestFuncionarioServiceUpdate(t *testing.T) {
	funcionarios := newFakeFuncionarioRepo()
	svc := NewFuncionarioService(funcionarios, newFakeUserRepo(), 4)
	ctx := context.Background()

	a, err := svc.Create(ctx, FuncionarioInput{Nome: "Carlos", CPF: "987.654.321-00", Cargo: "tratador"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, FuncionarioInput{Nome: "Paula", CPF: "111.222.333-44", Cargo: "guia"})
	require.NoError(t, err)

	// moving onto another employee's CPF conflicts
	_, err = svc.Update(ctx, b.ID, FuncionarioInput{Nome: "Paula", CPF: "987.654.321-00", Cargo: "guia"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	// keeping the own CPF is fine
	updated, err := svc.Update(ctx, a.ID, FuncionarioInput{Nome: "Carlos A.", CPF: "98765432100", Cargo: "tratador", Salario: 3500})
	require.NoError(t, err)
	assert.Equal(t, "Carlos A.", updated.Nome)
	assert.Equal(t, 3500.0, updated.Salario)
}

func TestVeterinarioServiceCRMVUnico(t *testing.T) {
	veterinarios := newFakeVeterinarioRepo()
	svc := NewVeterinarioService(veterinarios, newFakeFuncionarioRepo())
	ctx := context.Background()

	v, err := svc.Create(ctx, VeterinarioInput{Nome: "Dra. Lia", CRMV: " sp-12345 ", Especialidade: "felinos"})
	require.NoError(t, err)
	assert.Equal(t, "SP-12345", v.CRMV)

	// same CRMV, different case
	_, err = svc.Create(ctx, VeterinarioInput{Nome: "Dr. Beto", CRMV: "Sp-12345"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	// unknown staff link
	ref := uint64(42)
	_, err = svc.Create(ctx, VeterinarioInput{Nome: "Dr. Beto", CRMV: "RJ-1", FuncionarioID: &ref})
	assert.ErrorIs(t, err, repository.ErrFuncionarioNotFound)
}
