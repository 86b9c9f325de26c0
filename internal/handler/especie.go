package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type EspecieHandler struct {
	Svc *service.EspecieService
}

func NewEspecieHandler(svc *service.EspecieService) *EspecieHandler {
	return &EspecieHandler{Svc: svc}
}

func (h *EspecieHandler) Create(c echo.Context) error {
	var in service.EspecieInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "espécie criada com sucesso", created)
}

func (h *EspecieHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.EspecieFilters{
		Nome:    c.QueryParam("nome"),
		Familia: c.QueryParam("familia"),
		Ordem:   c.QueryParam("ordem"),
		Classe:  c.QueryParam("classe"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "espécies listadas", list)
}

func (h *EspecieHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	especie, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "espécie encontrada", especie)
}

func (h *EspecieHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.EspecieInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "espécie atualizada com sucesso", updated)
}

func (h *EspecieHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "espécie removida com sucesso", nil)
}
