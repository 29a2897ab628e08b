package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"listings-service/internal/core/domain"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeedFile(t, `[
		{"title": "Depto Ñuñoa", "comuna": "Ñuñoa", "price": 4200, "currency": "UF", "rooms": 2, "baths": 1, "m2": 55},
		{"title": "Sin comuna", "price": 1000},
		{"title": "Arriendo", "comuna": "Santiago", "price": 450000}
	]`)

	listings, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile: %v", err)
	}

	// La fila sin comuna se descarta.
	if len(listings) != 2 {
		t.Fatalf("listings = %d, want 2", len(listings))
	}
	if listings[0].Title != "Depto Ñuñoa" || *listings[0].Comuna != "Ñuñoa" {
		t.Errorf("primera fila inesperada: %+v", listings[0])
	}
	// Sin moneda informada se asume CLP.
	if listings[1].Currency != domain.CurrencyCLP {
		t.Errorf("currency = %q, want %q", listings[1].Currency, domain.CurrencyCLP)
	}
}

func TestLoadSeedFileRejectsInvalidSchema(t *testing.T) {
	cases := map[string]string{
		"objeto en vez de arreglo": `{"title": "x", "price": 1}`,
		"falta el precio":          `[{"title": "x"}]`,
		"moneda desconocida":       `[{"title": "x", "price": 1, "currency": "USD"}]`,
		"campo inesperado":         `[{"title": "x", "price": 1, "bedrooms": 2}]`,
	}

	for name, content := range cases {
		path := writeSeedFile(t, content)
		if _, err := LoadSeedFile(path); err == nil {
			t.Errorf("%s: se esperaba un error de validación", name)
		}
	}
}

func TestLoadSeedFileMissing(t *testing.T) {
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("se esperaba un error para un archivo inexistente")
	}
}
