package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/service"
)

type VisitanteHandler struct {
	Svc *service.VisitanteService
}

func NewVisitanteHandler(svc *service.VisitanteService) *VisitanteHandler {
	return &VisitanteHandler{Svc: svc}
}

// Register is the open self-registration endpoint: it creates the
// visitor record together with its login account.
func (h *VisitanteHandler) Register(c echo.Context) error {
	var in service.VisitanteInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Svc.Register(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "visitante registrado com sucesso", created)
}

func (h *VisitanteHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Svc.List(ctx, service.VisitanteFilters{
		Nome:          c.QueryParam("nome"),
		CPF:           c.QueryParam("cpf"),
		NascimentoDe:  c.QueryParam("nascimento_de"),
		NascimentoAte: c.QueryParam("nascimento_ate"),
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "visitantes listados", list)
}

func (h *VisitanteHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	visitante, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "visitante encontrado", visitante)
}

func (h *VisitanteHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var in service.VisitanteInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "visitante atualizado com sucesso", updated)
}

func (h *VisitanteHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "visitante removido com sucesso", nil)
}
