package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type FuncionarioHandler struct {
	Svc *service.FuncionarioService
}

func NewFuncionarioHandler(svc *service.FuncionarioService) *FuncionarioHandler {
	return &FuncionarioHandler{Svc: svc}
}

func (h *FuncionarioHandler) Create(c echo.Context) error {
	var in service.FuncionarioInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "funcionário criado com sucesso", created)
}

func (h *FuncionarioHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.FuncionarioFilters{
		Cargo: c.QueryParam("cargo"),
		Nome:  c.QueryParam("nome"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "funcionários listados", list)
}

func (h *FuncionarioHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	funcionario, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "funcionário encontrado", funcionario)
}

func (h *FuncionarioHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.FuncionarioInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "funcionário atualizado com sucesso", updated)
}

func (h *FuncionarioHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "funcionário removido com sucesso", nil)
}
