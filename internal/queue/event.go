// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into notification log
// entries.
package queue

// VisitanteRegistradoEvent is published when a visitor completes
// registration. It carries enough for downstream consumers to greet or
// audit without querying the primary database.
type VisitanteRegistradoEvent struct {
	VisitanteID  uint64 `json:"visitante_id"`
	Nome         string `json:"nome"`
	RegistradoEm string `json:"registrado_em"`
}

// InscricaoConfirmadaEvent is published when a visitor is enrolled in
// an event.
type InscricaoConfirmadaEvent struct {
	EventoID      uint64 `json:"evento_id"`
	EventoNome    string `json:"evento_nome"`
	DataHora      string `json:"data_hora"`
	VisitanteID   uint64 `json:"visitante_id"`
	VisitanteNome string `json:"visitante_nome"`
	ConfirmadaEm  string `json:"confirmada_em"`
}
