package domain

import (
	"testing"
)

func TestBoostRange_Amount_Bounds(t *testing.T) {
	b := DefaultBoostRange()

	for i := 0; i < 1000; i++ {
		amount := b.Amount()
		if amount < 1 || amount > 9 {
			t.Fatalf("amount %d outside [1,9]", amount)
		}
	}
}

func TestBoostRange_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   BoostRange
		want BoostRange
	}{
		{"zero range forced positive", BoostRange{}, BoostRange{Min: 1, Max: 1}},
		{"negative min forced to one", BoostRange{Min: -5, Max: 3}, BoostRange{Min: 1, Max: 3}},
		{"inverted range collapses to min", BoostRange{Min: 5, Max: 2}, BoostRange{Min: 5, Max: 5}},
		{"valid range untouched", BoostRange{Min: 1, Max: 9}, BoostRange{Min: 1, Max: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoostRange_Amount_SingleValue(t *testing.T) {
	b := BoostRange{Min: 4, Max: 4}
	for i := 0; i < 100; i++ {
		if amount := b.Amount(); amount != 4 {
			t.Fatalf("expected 4, got %d", amount)
		}
	}
}
