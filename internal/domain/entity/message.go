package entity

import "time"

// MessageKind mirrors the wire values the frontend expects.
type MessageKind string

const (
	MessageText          MessageKind = "texto"
	MessageImage         MessageKind = "imagen"
	MessageTextWithImage MessageKind = "texto_con_imagen"
)

// KindFor derives the message kind from its parts.
func KindFor(content, imageURL string) MessageKind {
	switch {
	case content != "" && imageURL != "":
		return MessageTextWithImage
	case imageURL != "":
		return MessageImage
	default:
		return MessageText
	}
}

// Message is a group or private chat message. RecipientID is nil for group chat.
type Message struct {
	ID          int64       `json:"id"`
	SenderID    int64       `json:"remitente_id"`
	SenderName  string      `json:"remitente_nombre"`
	RecipientID *int64      `json:"destinatario_id,omitempty"`
	Content     string      `json:"contenido"`
	ImageURL    string      `json:"imagen_url,omitempty"`
	Group       bool        `json:"es_grupal"`
	Kind        MessageKind `json:"tipo_mensaje"`
	Read        bool        `json:"leido"`
	SentAt      time.Time   `json:"fecha_envio"`
}

// Conversation summarizes a private thread with another user.
type Conversation struct {
	UserID        int64     `json:"usuario_id"`
	Username      string    `json:"nombre_usuario"`
	LastMessage   string    `json:"ultimo_mensaje"`
	LastMessageAt time.Time `json:"fecha_ultimo_mensaje"`
	Unread        int       `json:"mensajes_no_leidos"`
	Online        bool      `json:"esta_conectado"`
}
