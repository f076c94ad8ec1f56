// Команда seed наполняет каталог товарами из db/seed/products.json.
// Повторный запуск на непустом каталоге ничего не делает.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/shopspring/decimal"
	config "github.com/vinylcrate/go-backend/internal/cfg"
	"github.com/vinylcrate/go-backend/pkg/logger"
	"github.com/vinylcrate/go-backend/pkg/postgres"
)

type seedProduct struct {
	Name             string `json:"name"`
	Price            string `json:"price"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	BandName         string `json:"bandName"`
	Genre            string `json:"genre"`
	Year             int32  `json:"year"`
}

func main() {
	seedPath := flag.String("file", "db/seed/products.json", "путь к JSON-файлу с товарами")
	flag.Parse()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted, err := seed(ctx, db, *seedPath)
	if err != nil {
		log.Errorf(err, "seeding failed")
		os.Exit(1)
	}

	if inserted == 0 {
		log.Infof("catalog is not empty, nothing to seed")
		return
	}

	log.Infof("seeded %d products", inserted)
}

func seed(ctx context.Context, db *postgres.PgDatabase, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var products []seedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return 0, err
	}

	var count int64
	if err := db.Pool.QueryRow(ctx, "SELECT count(*) FROM products").Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (name, price, image, short_description, long_description, band_name, genre, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	inserted := 0
	for _, p := range products {
		price, err := parsePriceToCents(p.Price)
		if err != nil {
			return inserted, err
		}

		if _, err := db.Pool.Exec(ctx, query,
			p.Name,
			price,
			p.Image,
			p.ShortDescription,
			p.LongDescription,
			p.BandName,
			p.Genre,
			p.Year,
		); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

// parsePriceToCents переводит десятичную цену из файла в целые центы
// без потери точности на float.
func parsePriceToCents(raw string) (int64, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}

	return price.Shift(2).IntPart(), nil
}
