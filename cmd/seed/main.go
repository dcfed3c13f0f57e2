package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/orugalabs/gaming-server/pkg/helpers"

	"github.com/orugalabs/gaming-server/config"
)

type seedGame struct {
	name, description, genre          string
	price                             int64
	stock                             int
	platforms, developer, releaseDate string
	rating                            float64
}

var games = []seedGame{
	{"Elden Ring", "Mundo abierto de fantasía oscura de FromSoftware", "RPG", 49990, 25, "PC, PS5, Xbox", "FromSoftware", "2022-02-25", 9.5},
	{"Counter-Strike 2", "Shooter táctico competitivo 5v5", "FPS", 0, 999, "PC", "Valve", "2023-09-27", 8.9},
	{"Stardew Valley", "Simulador de granja y vida rural", "Simulación", 9990, 120, "PC, Switch, móvil", "ConcernedApe", "2016-02-26", 9.2},
	{"The Witcher 3", "RPG de mundo abierto con Geralt de Rivia", "RPG", 29990, 40, "PC, PS5, Xbox, Switch", "CD Projekt Red", "2015-05-19", 9.8},
	{"Hades II", "Roguelike de acción mitológico", "Acción", 24990, 60, "PC", "Supergiant Games", "2024-05-06", 9.0},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Moderator account for local testing.
	email := "moderador@gaming.cl"
	password := "moderador123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, username, role)
		VALUES ($1, $2, $3, 'moderator')
		ON CONFLICT (email) DO UPDATE SET role = 'moderator'
		RETURNING id
	`, email, hash, "Moderador").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed moderator: %v", err)
	}
	fmt.Printf("seeded moderator: id=%d email=%s password=%s\n", id, email, password)

	for _, g := range games {
		if _, err := db.Exec(`
			INSERT INTO games (name, description, genre, price, stock, platforms, developer, release_date, rating, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
			ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price, stock = EXCLUDED.stock
		`, g.name, g.description, g.genre, g.price, g.stock, g.platforms, g.developer, g.releaseDate, g.rating); err != nil {
			log.Fatalf("failed to seed game %q: %v", g.name, err)
		}
	}
	fmt.Printf("seeded %d games\n", len(games))

	if _, err := db.Exec(`
		INSERT INTO bank_config (bank_name, account_type, account_number, holder_name, holder_tax_id, email)
		VALUES ('Banco Estado', 'Cuenta Corriente', '12345678', 'Gaming Store SpA', '76.543.210-K', 'pagos@gaming.cl')
		ON CONFLICT (account_number) DO NOTHING
	`); err != nil {
		log.Fatalf("failed to seed bank config: %v", err)
	}
	fmt.Println("seeded bank transfer account")
}
