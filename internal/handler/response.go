// Package handler exposes the HTTP endpoints.  Handlers bind and
// forward to the services, then wrap every reply in the standard
// response envelope.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/repository"
	"zoo-api/internal/service"
)

// envelope is the uniform response body.  Data is null on failure,
// Errors is null on success, and ErrorCode carries the HTTP status of
// a failed request.
type envelope struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Data      any      `json:"data"`
	Errors    []string `json:"errors"`
	ErrorCode int      `json:"errorCode,omitempty"`
	Timestamp string   `json:"timestamp"`
	Path      string   `json:"path"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request().URL.Path,
	})
}

func respondError(c echo.Context, status int, message string, errs ...string) error {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return c.JSON(status, envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		ErrorCode: status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request().URL.Path,
	})
}

var notFoundErrs = []error{
	repository.ErrHabitatNotFound,
	repository.ErrEspecieNotFound,
	repository.ErrAnimalNotFound,
	repository.ErrAlimentacaoNotFound,
	repository.ErrCuidadorNotFound,
	repository.ErrVeterinarioNotFound,
	repository.ErrFuncionarioNotFound,
	repository.ErrVisitanteNotFound,
	repository.ErrEventoNotFound,
	repository.ErrEnrollmentNotFound,
	repository.ErrUserNotFound,
}

// fail translates a service or repository error into the envelope and
// the matching HTTP status.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		// The wrap folds field messages with "; "; unfold them into
		// the errors list.
		detail := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		return respondError(c, http.StatusBadRequest, "falha de validação", strings.Split(detail, "; ")...)
	case errors.Is(err, repository.ErrDuplicateKey):
		return respondError(c, http.StatusConflict, "registro duplicado")
	case errors.Is(err, repository.ErrCapacityExceeded):
		return respondError(c, http.StatusConflict, "capacidade máxima atingida")
	case errors.Is(err, repository.ErrConflict):
		return respondError(c, http.StatusConflict, "operação conflita com o estado atual")
	}
	for _, nf := range notFoundErrs {
		if errors.Is(err, nf) {
			return respondError(c, http.StatusNotFound, nf.Error())
		}
	}
	c.Logger().Errorf("internal error: %v", err)
	return respondError(c, http.StatusInternalServerError, "erro interno")
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// reqCtx bounds every database round trip made by one request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
