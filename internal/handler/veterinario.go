package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type VeterinarioHandler struct {
	Svc *service.VeterinarioService
}

func NewVeterinarioHandler(svc *service.VeterinarioService) *VeterinarioHandler {
	return &VeterinarioHandler{Svc: svc}
}

func (h *VeterinarioHandler) Create(c echo.Context) error {
	var in service.VeterinarioInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "veterinário criado com sucesso", created)
}

func (h *VeterinarioHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.VeterinarioFilters{
		Especialidade: c.QueryParam("especialidade"),
		Nome:          c.QueryParam("nome"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "veterinários listados", list)
}

func (h *VeterinarioHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	vet, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "veterinário encontrado", vet)
}

func (h *VeterinarioHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.VeterinarioInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "veterinário atualizado com sucesso", updated)
}

func (h *VeterinarioHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "veterinário removido com sucesso", nil)
}
