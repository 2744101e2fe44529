package domain

// ListingFilter - набор необязательных ограничений для выборки объявлений.
// Пустая строка / nil означает "без ограничения", а не ноль: нормализатор
// оставляет незаданные и некорректные поля отсутствующими.
type ListingFilter struct {
	Status      string
	Category    string
	MinPrice    *int
	MaxPrice    *int
	MinBedrooms *int

	// LocationText - текстовый поиск по городу ИЛИ области
	// (регистронезависимое вхождение подстроки).
	LocationText string
}

// IsEmpty сообщает, задано ли хотя бы одно ограничение.
// Пустой фильтр вырождается в "все объявления, новые сверху".
func (f ListingFilter) IsEmpty() bool {
	return f.Status == "" && f.Category == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.MinBedrooms == nil &&
		f.LocationText == ""
}
