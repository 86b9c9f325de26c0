package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type EventoHandler struct {
	Svc *service.EventoService
}

func NewEventoHandler(svc *service.EventoService) *EventoHandler {
	return &EventoHandler{Svc: svc}
}

func boolQuery(c echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "1", "true", "TRUE", "sim":
		return true
	}
	return false
}

func (h *EventoHandler) Create(c echo.Context) error {
	var in service.EventoInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "evento criado com sucesso", created)
}

func (h *EventoHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.EventoFilters{
		Nome:       c.QueryParam("nome"),
		PeriodoDe:  c.QueryParam("periodo_de"),
		PeriodoAte: c.QueryParam("periodo_ate"),
		Lotados:    boolQuery(c, "lotados"),
		Futuros:    boolQuery(c, "futuros"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "eventos listados", list)
}

func (h *EventoHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	evento, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "evento encontrado", evento)
}

// ListVisitantes returns the visitors enrolled in the event.
func (h *EventoHandler) ListVisitantes(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.ListVisitantes(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "visitantes do evento listados", list)
}

func (h *EventoHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.EventoInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "evento atualizado com sucesso", updated)
}

func visitanteIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("visitanteId"), 10, 64)
	if err != nil || id == 0 {
		return 0, err
	}
	return id, nil
}

// Enroll adds a visitor to the event.
func (h *EventoHandler) Enroll(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	visitanteID, err := visitanteIDParam(c)
	if err != nil || visitanteID == 0 {
		return respondError(c, http.StatusBadRequest, "visitanteId inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Enroll(ctx, id, visitanteID); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "inscrição confirmada", nil)
}

// Withdraw removes a visitor from the event.
func (h *EventoHandler) Withdraw(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	visitanteID, err := visitanteIDParam(c)
	if err != nil || visitanteID == 0 {
		return respondError(c, http.StatusBadRequest, "visitanteId inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Withdraw(ctx, id, visitanteID); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "inscrição cancelada", nil)
}

func (h *EventoHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "evento removido com sucesso", nil)
}
