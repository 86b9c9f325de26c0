package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"zoo-api/internal/model"
)

const (
	visitanteQueueName = "visitante.registrado"
	inscricaoQueueName = "inscricao.confirmada"
)

// Publisher sends domain events to RabbitMQ.  Every publish is
// fire-and-forget: failures are logged and swallowed so a broker outage
// never fails the request that triggered the event.  Messages are
// marked persistent so they survive broker restarts.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// VisitanteRegistered publishes a VisitanteRegistradoEvent.
func (p *Publisher) VisitanteRegistered(ctx context.Context, v *model.Visitante) {
	p.publish(ctx, visitanteQueueName, VisitanteRegistradoEvent{
		VisitanteID:  v.ID,
		Nome:         v.Nome,
		RegistradoEm: time.Now().UTC().Format(time.RFC3339),
	})
}

// EnrollmentConfirmed publishes an InscricaoConfirmadaEvent.
func (p *Publisher) EnrollmentConfirmed(ctx context.Context, e *model.Evento, v *model.Visitante) {
	p.publish(ctx, inscricaoQueueName, InscricaoConfirmadaEvent{
		EventoID:      e.ID,
		EventoNome:    e.Nome,
		DataHora:      e.DataHora.UTC().Format(time.RFC3339),
		VisitanteID:   v.ID,
		VisitanteNome: v.Nome,
		ConfirmadaEm:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Declare is idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", queueName, err)
	}
}
