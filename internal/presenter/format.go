package presenter

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Слой представления: числа превращаются в строки для карточек и
// детальной страницы. Ошибок здесь не бывает - любое значение
// форматируется хоть как-нибудь.

var printer = message.NewPrinter(language.BritishEnglish)

// Символы валют, которые рисуем перед суммой. Остальные коды
// показываются как ISO-префикс.
var currencySymbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
}

// FormatPrice возвращает цену с символом валюты и разделителями групп,
// без дробной части: 450000 GBP -> "£450,000".
func FormatPrice(amount float64, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = "GBP"
	}

	// NaN и бесконечности в группировку не отправляем - печатаем как есть.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%s%v", symbolFor(code), amount)
	}

	grouped := printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	return symbolFor(code) + grouped
}

func symbolFor(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	// Незнакомый, но валидный ISO-код показываем префиксом: "CHF 1,200,000".
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String() + " "
	}
	return code + " "
}

// FormatArea возвращает площадь с разделителями групп: 1250 -> "1,250".
// Единицу измерения добавляет вызывающая сторона.
func FormatArea(area float64) string {
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return fmt.Sprintf("%v", area)
	}
	return printer.Sprint(number.Decimal(area, number.MaxFractionDigits(0)))
}
