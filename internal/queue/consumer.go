package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartNotificationConsumer consumes both notification queues and
// appends each message to logs/notificacoes.log in a single-line,
// human-friendly format. It runs one reconnect loop per queue and
// never returns under normal operation; failed messages are rejected
// without requeue so a poison message cannot loop forever.
func StartNotificationConsumer(url string) {
	go runConsumer(url, visitanteQueueName)
	runConsumer(url, inscricaoQueueName)
}

func runConsumer(url, queueName string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("notificacao-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, queueName); err != nil {
			log.Printf("notificacao-consumer: %s loop ended: %v; reconnecting", queueName, err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, queueName string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("notificacao-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(queueName, d.Body); err != nil {
			log.Printf("notificacao-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(queueName string, body []byte) error {
	var line string
	switch queueName {
	case visitanteQueueName:
		var ev VisitanteRegistradoEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		line = fmt.Sprintf("[%s] Visitante registrado | visitante_id=%d | nome=%q\n",
			ev.RegistradoEm, ev.VisitanteID, ev.Nome)
	case inscricaoQueueName:
		var ev InscricaoConfirmadaEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal: %w", err)
		}
		line = fmt.Sprintf("[%s] Inscrição confirmada | evento_id=%d | evento=%q | data=%s | visitante_id=%d | visitante=%q\n",
			ev.ConfirmadaEm, ev.EventoID, ev.EventoNome, ev.DataHora, ev.VisitanteID, ev.VisitanteNome)
	default:
		return fmt.Errorf("fila desconhecida %q", queueName)
	}
	return appendNotification(line)
}

func appendNotification(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "notificacoes.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
