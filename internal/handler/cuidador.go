package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type CuidadorHandler struct {
	Svc *service.CuidadorService
}

func NewCuidadorHandler(svc *service.CuidadorService) *CuidadorHandler {
	return &CuidadorHandler{Svc: svc}
}

func (h *CuidadorHandler) Create(c echo.Context) error {
	var in service.CuidadorInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "cuidador criado com sucesso", created)
}

func (h *CuidadorHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.CuidadorFilters{
		Especialidade: c.QueryParam("especialidade"),
		Turno:         c.QueryParam("turno"),
		Nome:          c.QueryParam("nome"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "cuidadores listados", list)
}

func (h *CuidadorHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cuidador, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "cuidador encontrado", cuidador)
}

func (h *CuidadorHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.CuidadorInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "cuidador atualizado com sucesso", updated)
}

func (h *CuidadorHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "cuidador removido com sucesso", nil)
}
