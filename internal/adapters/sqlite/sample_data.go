package sqlite

import "listings-service/internal/core/domain"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SampleListings es el dataset por defecto que se carga cuando la base
// está vacía y no se configuró ningún archivo de datos. Los valores
// imitan avisos reales de portales chilenos, con precios en UF salvo
// los arriendos en CLP.
func SampleListings() []domain.Listing {
	portal := strPtr("portalinmobiliario")

	return []domain.Listing{
		{
			Title: "Depto 2D/2B metro Ñuble", Comuna: strPtr("Ñuñoa"),
			Address: strPtr("Av. Irarrázaval 3200"), Price: 4900, Currency: domain.CurrencyUF,
			Rooms: intPtr(2), Baths: intPtr(2), AreaM2: intPtr(62), Parking: 1, Source: portal,
		},
		{
			Title: "Depto 1D/1B Plaza Ñuñoa", Comuna: strPtr("Ñuñoa"),
			Address: strPtr("Jorge Washington 120"), Price: 3650, Currency: domain.CurrencyUF,
			Rooms: intPtr(1), Baths: intPtr(1), AreaM2: intPtr(41), Source: portal,
		},
		{
			Title: "Casa 4D/3B con patio", Comuna: strPtr("Ñuñoa"),
			Address: strPtr("Los Alerces 2550"), Price: 11200, Currency: domain.CurrencyUF,
			Rooms: intPtr(4), Baths: intPtr(3), AreaM2: intPtr(140), Parking: 2, Source: portal,
		},
		{
			Title: "Depto 3D/2B Pedro de Valdivia", Comuna: strPtr("Providencia"),
			Address: strPtr("Av. Pedro de Valdivia 1780"), Price: 7800, Currency: domain.CurrencyUF,
			Rooms: intPtr(3), Baths: intPtr(2), AreaM2: intPtr(88), Parking: 1, Source: portal,
		},
		{
			Title: "Estudio metro Manuel Montt", Comuna: strPtr("Providencia"),
			Price: 2950, Currency: domain.CurrencyUF,
			Rooms: intPtr(1), Baths: intPtr(1), AreaM2: intPtr(28), Source: portal,
		},
		{
			Title: "Depto 2D/2B El Golf", Comuna: strPtr("Las Condes"),
			Address: strPtr("Callao 2970"), Price: 8900, Currency: domain.CurrencyUF,
			Rooms: intPtr(2), Baths: intPtr(2), AreaM2: intPtr(75), Parking: 1, Source: portal,
		},
		{
			Title: "Casa 5D/4B Los Dominicos", Comuna: strPtr("Las Condes"),
			Price: 19500, Currency: domain.CurrencyUF,
			Rooms: intPtr(5), Baths: intPtr(4), AreaM2: intPtr(240), Parking: 3, Source: portal,
		},
		{
			Title: "Depto 2D/1B Barrio Yungay", Comuna: strPtr("Santiago"),
			Address: strPtr("Compañía de Jesús 2365"), Price: 3200, Currency: domain.CurrencyUF,
			Rooms: intPtr(2), Baths: intPtr(1), AreaM2: intPtr(58), Source: portal,
		},
		{
			Title: "Arriendo depto 1D/1B Santa Isabel", Comuna: strPtr("Santiago"),
			Price: 420000, Currency: domain.CurrencyCLP,
			Rooms: intPtr(1), Baths: intPtr(1), AreaM2: intPtr(35), Source: portal,
		},
		{
			Title: "Casa 3D/2B condominio", Comuna: strPtr("Maipú"),
			Address: strPtr("Camino Rinconada 4400"), Price: 5400, Currency: domain.CurrencyUF,
			Rooms: intPtr(3), Baths: intPtr(2), AreaM2: intPtr(110), Parking: 2, Source: portal,
		},
		{
			Title: "Depto 3D/2B Vicuña Mackenna", Comuna: strPtr("La Florida"),
			Price: 4100, Currency: domain.CurrencyUF,
			Rooms: intPtr(3), Baths: intPtr(2), AreaM2: intPtr(70), Parking: 1, Source: portal,
		},
		{
			Title: "Penthouse 4D/4B Santa María de Manquehue", Comuna: strPtr("Vitacura"),
			Price: 24800, Currency: domain.CurrencyUF,
			Rooms: intPtr(4), Baths: intPtr(4), AreaM2: intPtr(210), Parking: 2, Source: portal,
		},
	}
}
