package sqlite

import (
	"encoding/json"
	"fmt"
	"os"

	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
)

// seedListing refleja una fila del archivo de carga inicial. Usa los
// mismos nombres de campo que la API pública (baths, m2) en lugar de
// los nombres de columna.
type seedListing struct {
	Title    string  `json:"title"`
	Comuna   *string `json:"comuna"`
	Address  *string `json:"address"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Rooms    *int    `json:"rooms"`
	Baths    *int    `json:"baths"`
	AreaM2   *int    `json:"m2"`
	Parking  int     `json:"parking"`
	Source   *string `json:"source"`
	URL      *string `json:"url"`
}

// LoadSeedFile lee y valida un archivo JSON de avisos. Igual que el
// importador original, descarta las filas sin comuna: no se pueden
// buscar ni relacionar con avisos similares.
func LoadSeedFile(path string) ([]domain.Listing, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	if err := contracts.ValidateSeedListings(body); err != nil {
		return nil, err
	}

	var raw []seedListing
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal seed file: %w", err)
	}

	listings := make([]domain.Listing, 0, len(raw))
	for _, r := range raw {
		if r.Comuna == nil || *r.Comuna == "" {
			continue
		}
		currency := r.Currency
		if currency == "" {
			currency = domain.CurrencyCLP
		}
		listings = append(listings, domain.Listing{
			Title:    r.Title,
			Comuna:   r.Comuna,
			Address:  r.Address,
			Price:    r.Price,
			Currency: currency,
			Rooms:    r.Rooms,
			Baths:    r.Baths,
			AreaM2:   r.AreaM2,
			Parking:  r.Parking,
			Source:   r.Source,
			URL:      r.URL,
		})
	}
	return listings, nil
}
