package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type AnimalHandler struct {
	Svc *service.AnimalService
}

func NewAnimalHandler(svc *service.AnimalService) *AnimalHandler {
	return &AnimalHandler{Svc: svc}
}

// intQuery parses an optional integer query parameter; absent params
// return nil.
func intQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (h *AnimalHandler) Create(c echo.Context) error {
	var in service.AnimalInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "animal criado com sucesso", created)
}

func (h *AnimalHandler) List(c echo.Context) error {
	idadeMin, err := intQuery(c, "idade_min")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "idade_min deve ser um número")
	}
	idadeMax, err := intQuery(c, "idade_max")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "idade_max deve ser um número")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.AnimalFilters{
		IdadeMin: idadeMin,
		IdadeMax: idadeMax,
		Nome:     c.QueryParam("nome"),
		Especie:  c.QueryParam("especie"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "animais listados", list)
}

func (h *AnimalHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	animal, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "animal encontrado", animal)
}

func (h *AnimalHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.AnimalInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "animal atualizado com sucesso", updated)
}

func (h *AnimalHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "animal removido com sucesso", nil)
}
