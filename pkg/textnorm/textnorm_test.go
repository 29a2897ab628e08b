package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ñuñoa", "nunoa"},
		{"NUÑOA", "nunoa"},
		{"nunoa", "nunoa"},
		{"  Peñalolén ", "penalolen"},
		{"Estación Central", "estacion central"},
		{"Maipú", "maipu"},
		{"Santiago", "santiago"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "Ñuñoa"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize no es idempotente: %q -> %q -> %q", in, once, twice)
	}
}
