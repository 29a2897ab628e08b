package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"listings-service/internal/core/domain"
)

// newTestRepo levanta una base real en un archivo temporal y carga los
// avisos indicados.
func newTestRepo(t *testing.T, listings []domain.Listing) *ListingRepository {
	t.Helper()

	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if len(listings) > 0 {
		if _, err := store.InsertListings(ctx, listings); err != nil {
			t.Fatalf("InsertListings: %v", err)
		}
	}

	repo, err := NewListingRepository(store)
	if err != nil {
		t.Fatalf("NewListingRepository: %v", err)
	}
	return repo
}

func testListing(title, comuna string, price float64, rooms, baths, m2 int) domain.Listing {
	return domain.Listing{
		Title:    title,
		Comuna:   &comuna,
		Price:    price,
		Currency: domain.CurrencyUF,
		Rooms:    &rooms,
		Baths:    &baths,
		AreaM2:   &m2,
	}
}

func TestSearchDefaults(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("B", "Providencia", 200, 2, 1, 60),
		testListing("A", "Santiago", 100, 1, 1, 40),
		testListing("C", "Las Condes", 300, 3, 2, 90),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want 1", result.Page)
	}
	if result.PageSize != domain.DefaultPageSize {
		t.Errorf("pageSize = %d, want %d", result.PageSize, domain.DefaultPageSize)
	}

	// Orden por defecto: precio ascendente.
	wantPrices := []float64{100, 200, 300}
	for i, want := range wantPrices {
		if result.Items[i].Price != want {
			t.Errorf("items[%d].Price = %v, want %v", i, result.Items[i].Price, want)
		}
	}
}

func TestSearchPriceDesc(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("cien", "Santiago", 100, 2, 1, 50),
		testListing("cincuenta", "Santiago", 50, 2, 1, 50),
		testListing("doscientos", "Santiago", 200, 2, 1, 50),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{Sort: domain.SortPriceDesc})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	wantPrices := []float64{200, 100, 50}
	for i, want := range wantPrices {
		if result.Items[i].Price != want {
			t.Errorf("items[%d].Price = %v, want %v", i, result.Items[i].Price, want)
		}
	}
}

func TestSearchMinGreaterThanMax(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("A", "Santiago", 100, 2, 1, 50),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{
		RoomsMin: intp(5),
		RoomsMax: intp(2),
	})
	if err != nil {
		t.Fatalf("min>max no debe ser un error: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
	if len(result.Items) != 0 {
		t.Errorf("items = %d, want 0", len(result.Items))
	}
}

func TestSearchPageSizeClamped(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("A", "Santiago", 100, 2, 1, 50),
	})

	for _, requested := range []int{0, -5, 1000} {
		result, err := repo.Search(context.Background(), domain.SearchFilters{PageSize: requested})
		if err != nil {
			t.Fatalf("Search(pageSize=%d): %v", requested, err)
		}
		if result.PageSize < 1 || result.PageSize > domain.MaxPageSize {
			t.Errorf("pageSize=%d quedó fuera de [1,%d]: %d", requested, domain.MaxPageSize, result.PageSize)
		}
	}
}

func TestSearchPastLastPage(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("A", "Santiago", 100, 2, 1, 50),
		testListing("B", "Santiago", 200, 2, 1, 50),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{Page: 99, PageSize: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
	if len(result.Items) != 0 {
		t.Errorf("una página pasada la última debe venir vacía, got %d items", len(result.Items))
	}
}

func TestSearchPageBelowOneClampsToOne(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("A", "Santiago", 100, 2, 1, 50),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{Page: -3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want 1", result.Page)
	}
	if len(result.Items) != 1 {
		t.Errorf("items = %d, want 1", len(result.Items))
	}
}

func TestSearchComunaAccentInsensitive(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("Depto Ñuñoa", "Ñuñoa", 4200, 2, 1, 55),
		testListing("Depto Maipú", "Maipú", 3000, 2, 1, 50),
	})

	for _, query := range []string{"nunoa", "NUÑOA", "Nuñoa", "ñuñoa"} {
		result, err := repo.Search(context.Background(), domain.SearchFilters{Comuna: query})
		if err != nil {
			t.Fatalf("Search(%q): %v", query, err)
		}
		if result.Total != 1 {
			t.Errorf("comuna=%q: total = %d, want 1", query, result.Total)
			continue
		}
		if result.Items[0].Title != "Depto Ñuñoa" {
			t.Errorf("comuna=%q devolvió %q", query, result.Items[0].Title)
		}
	}
}

func TestSearchCurrencyFilter(t *testing.T) {
	clp := testListing("Arriendo", "Santiago", 450000, 1, 1, 35)
	clp.Currency = domain.CurrencyCLP

	repo := newTestRepo(t, []domain.Listing{
		testListing("Venta", "Santiago", 4000, 2, 1, 55),
		clp,
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{Currency: "clp"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 1 || result.Items[0].Title != "Arriendo" {
		t.Errorf("currency=clp: got total=%d", result.Total)
	}
}

func TestSearchRoundTripScenario(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("Depto 2D/1B", "Ñuñoa", 4200, 2, 1, 55),
		testListing("Otro", "Providencia", 5000, 3, 2, 80),
	})

	result, err := repo.Search(context.Background(), domain.SearchFilters{
		Comuna:   "nunoa",
		RoomsMin: intp(2),
		RoomsMax: intp(2),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("total = %d, want 1", result.Total)
	}
	got := result.Items[0]
	if got.Title != "Depto 2D/1B" || got.Price != 4200 || *got.Rooms != 2 {
		t.Errorf("aviso inesperado: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t, nil)

	_, err := repo.GetByID(context.Background(), 9999)
	if err != domain.ErrListingNotFound {
		t.Errorf("err = %v, want ErrListingNotFound", err)
	}
}

func TestFindSimilar(t *testing.T) {
	listings := []domain.Listing{
		testListing("base", "Ñuñoa", 5000, 2, 1, 60),
		testListing("similar barato", "Ñuñoa", 3000, 1, 1, 40),
		testListing("similar caro", "Ñuñoa", 7000, 3, 2, 80),
		testListing("otra comuna", "Providencia", 5000, 2, 1, 60),
		testListing("muchas piezas", "Ñuñoa", 5000, 5, 3, 120),
	}
	// Más de 6 candidatos válidos para verificar el tope.
	for i := 0; i < 8; i++ {
		listings = append(listings, testListing("relleno", "Ñuñoa", float64(8000+i*100), 2, 1, 55))
	}

	repo := newTestRepo(t, listings)

	base, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID(1): %v", err)
	}
	if base.Title != "base" {
		t.Fatalf("el aviso 1 debería ser el base, got %q", base.Title)
	}

	items, err := repo.FindSimilar(context.Background(), base.ID)
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}

	if len(items) > 6 {
		t.Errorf("similares = %d, el tope es 6", len(items))
	}
	for i, item := range items {
		if item.ID == base.ID {
			t.Errorf("el resultado incluye al aviso base")
		}
		if *item.Comuna != "Ñuñoa" {
			t.Errorf("comuna = %q, want Ñuñoa", *item.Comuna)
		}
		if *item.Rooms < 1 || *item.Rooms > 3 {
			t.Errorf("rooms = %d, fuera del rango [1,3]", *item.Rooms)
		}
		if i > 0 && items[i-1].Price > item.Price {
			t.Errorf("los similares no vienen ordenados por precio ascendente")
		}
	}
}

func TestFindSimilarUnknownID(t *testing.T) {
	repo := newTestRepo(t, []domain.Listing{
		testListing("A", "Santiago", 100, 2, 1, 50),
	})

	items, err := repo.FindSimilar(context.Background(), 12345)
	if err != nil {
		t.Fatalf("un id desconocido no debe ser un error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestFindSimilarBaseWithoutRooms(t *testing.T) {
	comuna := "Santiago"
	repo := newTestRepo(t, []domain.Listing{
		{Title: "sin piezas", Comuna: &comuna, Price: 1000, Currency: domain.CurrencyUF},
		testListing("un dormitorio", "Santiago", 2000, 1, 1, 40),
		testListing("dos dormitorios", "Santiago", 3000, 2, 1, 60),
	})

	// Sin dormitorios informados el rango se calcula desde 0: [-1, 1].
	items, err := repo.FindSimilar(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(items) != 1 || items[0].Title != "un dormitorio" {
		t.Errorf("items inesperados: %d", len(items))
	}
}
