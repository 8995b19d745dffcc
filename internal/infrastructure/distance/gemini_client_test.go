package distance

import "testing"

func TestExtractMeters(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"bare integer", "1500", 1500},
		{"surrounded by prose", "A distância é de aproximadamente 3200 metros.", 3200},
		{"leading whitespace", "  4200\n", 4200},
		{"first of several numbers wins", "2500 metros, ou 2.5 km", 2500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractMeters(tc.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("no number", func(t *testing.T) {
		if _, err := extractMeters("não foi possível calcular"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("zero is rejected", func(t *testing.T) {
		if _, err := extractMeters("0"); err == nil {
			t.Fatal("expected an error for a non-positive distance")
		}
	})
}
