package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"listings-service/internal/core/domain"
	"listings-service/pkg/textnorm"
)

// Store envuelve la conexión al archivo SQLite. Es la única dependencia
// con estado del servicio: las escrituras ocurren solo durante la carga
// inicial, después el acceso es de solo lectura.
type Store struct {
	db *sql.DB
}

// OpenStore abre (o crea) la base de datos en la ruta indicada,
// creando el directorio si hace falta.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema crea la tabla de avisos si no existe. El esquema es el
// canónico del servicio; comuna_norm guarda la comuna ya normalizada
// para la comparación sin tildes.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS listings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  comuna TEXT,
  comuna_norm TEXT,
  address TEXT,
  price REAL NOT NULL CHECK (price >= 0),
  currency TEXT NOT NULL DEFAULT 'CLP',
  rooms INTEGER,
  baths INTEGER,
  area_m2 INTEGER,
  parking INTEGER NOT NULL DEFAULT 0,
  source TEXT,
  url TEXT,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("create listings table: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_listings_comuna_norm ON listings(comuna_norm);`); err != nil {
		return fmt.Errorf("create comuna index: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_listings_price ON listings(price);`); err != nil {
		return fmt.Errorf("create price index: %w", err)
	}
	return nil
}

// CountListings devuelve la cantidad total de avisos guardados.
func (s *Store) CountListings(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// InsertListings inserta el dataset inicial en una sola transacción,
// calculando comuna_norm para cada fila. Devuelve cuántas filas entraron.
func (s *Store) InsertListings(ctx context.Context, listings []domain.Listing) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO listings
(title, comuna, comuna_norm, address, price, currency, rooms, baths, area_m2, parking, source, url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, l := range listings {
		currency := l.Currency
		if currency == "" {
			currency = domain.CurrencyCLP
		}

		var comunaNorm *string
		if l.Comuna != nil {
			norm := textnorm.Normalize(*l.Comuna)
			comunaNorm = &norm
		}

		if _, err := stmt.ExecContext(ctx,
			l.Title, l.Comuna, comunaNorm, l.Address, l.Price, currency,
			l.Rooms, l.Baths, l.AreaM2, l.Parking, l.Source, l.URL,
		); err != nil {
			return 0, fmt.Errorf("insert listing %q: %w", l.Title, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import transaction: %w", err)
	}
	return inserted, nil
}
