package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/orugalabs/gaming-server/config"
	"github.com/orugalabs/gaming-server/pkg/mailer"
)

// Consumes EmailJob messages from the notification queue and delivers them
// through Mailgun. Runs as a separate process so a mail outage never blocks
// the API.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}
	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject, text := renderJob(job)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, job.To, subject, text); err != nil {
				cancel()
				log.Printf("send to %s failed: %v", job.To, err)
				// Requeue once; a second failure drops the message.
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			cancel()
			_ = msg.Ack(false)
			log.Printf("sent %s email to %s", job.Kind, job.To)
		}
		close(done)
	}()

	log.Printf("email worker consuming from %q", cfg.RabbitMQEmailQueue)
	<-stop
	log.Println("shutting down email worker")
	_ = ch.Close()
	<-done
}

// renderJob builds subject and body for each notification kind. Unknown
// kinds fall back to the job's own subject.
func renderJob(job mailer.EmailJob) (string, string) {
	get := func(key string) string {
		if v, ok := job.Data[key]; ok {
			return fmt.Sprintf("%v", v)
		}
		return ""
	}
	switch job.Kind {
	case "order_approved":
		return "Tu orden " + get("orden") + " fue aprobada",
			"¡Buenas noticias! Tu orden " + get("orden") + " por " + get("total") +
				" fue aprobada. Ya puedes disfrutar de tus juegos.\n\nComentario del moderador: " + get("comentario")
	case "order_rejected":
		return "Tu orden " + get("orden") + " fue rechazada",
			"Tu orden " + get("orden") + " por " + get("total") +
				" fue rechazada tras revisar el comprobante.\n\nMotivo: " + get("comentario") +
				"\n\nSi crees que es un error, responde a este correo."
	case "account_banned":
		return "Tu cuenta ha sido suspendida",
			"Tu cuenta ha sido suspendida por un moderador.\n\nRazón: " + get("razon")
	default:
		subject := job.Subject
		if subject == "" {
			subject = "Notificación"
		}
		return subject, get("texto")
	}
}
