package entity

import "time"

// Post is a forum publication. Announcements can only be authored by moderators.
type Post struct {
	ID           int64     `json:"id"`
	AuthorID     int64     `json:"autor_id"`
	AuthorName   string    `json:"autor_nombre"`
	Title        string    `json:"titulo"`
	Content      string    `json:"contenido"`
	ImageURL     string    `json:"imagen_url,omitempty"`
	Likes        int       `json:"likes"`
	CommentCount int       `json:"cantidad_comentarios"`
	Announcement bool      `json:"es_anuncio"`
	CreatedAt    time.Time `json:"fecha_creacion"`
	UpdatedAt    time.Time `json:"fecha_actualizacion"`
}

type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"publicacion_id"`
	AuthorID   int64     `json:"autor_id"`
	AuthorName string    `json:"autor_nombre"`
	Content    string    `json:"contenido"`
	CreatedAt  time.Time `json:"fecha_creacion"`
}
