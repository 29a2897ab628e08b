package sqlite

import (
	"reflect"
	"strings"
	"testing"

	"listings-service/internal/core/domain"
)

func intp(v int) *int          { return &v }
func floatp(v float64) *float64 { return &v }

func TestApplyFiltersEmpty(t *testing.T) {
	where, args := applyFilters(domain.SearchFilters{})
	if where != "" {
		t.Errorf("sin filtros el WHERE debe ser vacío, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("sin filtros no debe haber argumentos, got %v", args)
	}
}

func TestApplyFiltersIsDeterministic(t *testing.T) {
	filters := domain.SearchFilters{
		Comuna:   "Ñuñoa",
		Currency: "uf",
		RoomsMin: intp(2),
		RoomsMax: intp(3),
		PriceMin: floatp(1000),
	}

	where1, args1 := applyFilters(filters)
	where2, args2 := applyFilters(filters)

	if where1 != where2 {
		t.Errorf("el mismo filtro produjo SQL distinto: %q vs %q", where1, where2)
	}
	if !reflect.DeepEqual(args1, args2) {
		t.Errorf("el mismo filtro produjo argumentos distintos: %v vs %v", args1, args2)
	}

	// El texto de la consulta nunca contiene la entrada del cliente.
	if strings.Contains(where1, "nunoa") || strings.Contains(where1, "Ñuñoa") {
		t.Errorf("la entrada quedó interpolada en el SQL: %q", where1)
	}

	wantArgs := []interface{}{"nunoa", "UF", 2, 3, 1000.0}
	if !reflect.DeepEqual(args1, wantArgs) {
		t.Errorf("args = %v, want %v", args1, wantArgs)
	}
}

func TestApplyFiltersZeroIsAValue(t *testing.T) {
	// Un mínimo de 0 es un límite real, no un filtro ausente.
	where, args := applyFilters(domain.SearchFilters{RoomsMin: intp(0)})
	if !strings.Contains(where, "rooms >= ?") {
		t.Errorf("RoomsMin=0 debe generar condición, got %q", where)
	}
	if len(args) != 1 || args[0] != 0 {
		t.Errorf("args = %v, want [0]", args)
	}
}

func TestResolveOrder(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{domain.SortPriceAsc, "ORDER BY price ASC"},
		{domain.SortPriceDesc, "ORDER BY price DESC"},
		{domain.SortAreaAsc, "ORDER BY area_m2 ASC"},
		{domain.SortAreaDesc, "ORDER BY area_m2 DESC"},
		{domain.SortRecent, "ORDER BY created_at DESC, id DESC"},
		{"", "ORDER BY price ASC"},
		{"price; DROP TABLE listings", "ORDER BY price ASC"},
	}

	for _, c := range cases {
		if got := resolveOrder(c.sort); got != c.want {
			t.Errorf("resolveOrder(%q) = %q, want %q", c.sort, got, c.want)
		}
	}
}
