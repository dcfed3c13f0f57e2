package mailer

// EmailJob is the JSON payload queued on RabbitMQ for the email worker.
// Kinds: "order_approved", "order_rejected", "account_banned".
type EmailJob struct {
	To      string         `json:"to"`
	Kind    string         `json:"kind"`
	Subject string         `json:"subject,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}
