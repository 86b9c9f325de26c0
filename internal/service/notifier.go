package service

import (
	"context"

	"zoo-api/internal/model"
)

// Notifier publishes domain events after a write commits.  Publishing
// is fire-and-forget: implementations log failures and never return
// them, so a broker outage cannot fail a request.  Services tolerate a
// nil Notifier.
type Notifier interface {
	VisitanteRegistered(ctx context.Context, v *model.Visitante)
	EnrollmentConfirmed(ctx context.Context, e *model.Evento, v *model.Visitante)
}
