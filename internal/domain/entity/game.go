package entity

import (
	"strconv"
	"time"
)

// Game is a catalog entry. Prices are whole Chilean pesos (CLP has no minor unit).
type Game struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Genre       string    `json:"genero"`
	Price       int64     `json:"precio"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imagen_url"`
	Platforms   string    `json:"plataformas"`
	Developer   string    `json:"desarrollador"`
	ReleaseDate string    `json:"fecha_lanzamiento"`
	Rating      float64   `json:"calificacion"`
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *Game) InStock() bool { return g.Stock > 0 }

// FormatCLP renders an amount as "$1.234.567" with dot thousand separators.
func FormatCLP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
