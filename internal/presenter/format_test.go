package presenter

import (
	"math"
	"strings"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"pounds with grouping", 450000, "GBP", "£450,000"},
		{"dollars", 1250000, "USD", "$1,250,000"},
		{"euros", 980000, "EUR", "€980,000"},
		{"small amount without grouping", 950, "GBP", "£950"},
		{"empty currency defaults to GBP", 450000, "", "£450,000"},
		{"lowercase code is normalized", 450000, "gbp", "£450,000"},
		{"known ISO code without symbol", 1200000, "CHF", "CHF 1,200,000"},
		{"zero", 0, "GBP", "£0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrice(tt.amount, tt.currency)
			if got != tt.want {
				t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

// Нечисловые значения не форматируются, а проходят насквозь:
// слой представления никогда не возвращает ошибку.
func TestFormatPrice_NonFinitePassesThrough(t *testing.T) {
	got := FormatPrice(math.NaN(), "GBP")
	if !strings.Contains(got, "NaN") {
		t.Errorf("expected NaN to pass through, got %q", got)
	}

	got = FormatPrice(math.Inf(1), "GBP")
	if !strings.Contains(got, "Inf") {
		t.Errorf("expected +Inf to pass through, got %q", got)
	}
}

// FormatArea отдает только число: единицу ("sq ft" и т.п.) добавляет
// строка отображения, которую собирает вызывающая сторона.
func TestFormatArea(t *testing.T) {
	tests := []struct {
		name string
		area float64
		want string
	}{
		{"grouped", 1250, "1,250"},
		{"small", 650, "650"},
		{"large", 12500, "12,500"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatArea(tt.area)
			if got != tt.want {
				t.Errorf("FormatArea(%v) = %q, want %q", tt.area, got, tt.want)
			}
			if strings.Contains(got, "sq") {
				t.Errorf("FormatArea(%v) = %q, must not carry a unit", tt.area, got)
			}
		})
	}
}
