package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type HabitatHandler struct {
	Svc *service.HabitatService
}

func NewHabitatHandler(svc *service.HabitatService) *HabitatHandler {
	return &HabitatHandler{Svc: svc}
}

func (h *HabitatHandler) Create(c echo.Context) error {
	var in service.HabitatInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "habitat criado com sucesso", created)
}

func (h *HabitatHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.HabitatFilters{
		Tipo: c.QueryParam("tipo"),
		Nome: c.QueryParam("nome"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "habitats listados", list)
}

func (h *HabitatHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	habitat, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "habitat encontrado", habitat)
}

func (h *HabitatHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.HabitatInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "habitat atualizado com sucesso", updated)
}

func (h *HabitatHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "habitat removido com sucesso", nil)
}
