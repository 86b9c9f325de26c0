package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type AlimentacaoHandler struct {
	Svc *service.AlimentacaoService
}

func NewAlimentacaoHandler(svc *service.AlimentacaoService) *AlimentacaoHandler {
	return &AlimentacaoHandler{Svc: svc}
}

func (h *AlimentacaoHandler) Create(c echo.Context) error {
	var in service.AlimentacaoInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "alimentação criada com sucesso", created)
}

func (h *AlimentacaoHandler) List(c echo.Context) error {
	var animalID uint64
	if raw := c.QueryParam("animal_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "animal_id deve ser um número")
		}
		animalID = id
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.AlimentacaoFilters{
		TipoComida: c.QueryParam("tipo_comida"),
		AnimalID:   animalID,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "alimentações listadas", list)
}

func (h *AlimentacaoHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	alimentacao, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "alimentação encontrada", alimentacao)
}

func (h *AlimentacaoHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.AlimentacaoInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "alimentação atualizada com sucesso", updated)
}

func (h *AlimentacaoHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "alimentação removida com sucesso", nil)
}
