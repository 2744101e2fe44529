package domain

// Границы ценового коридора для похожих объявлений. Дешевая и объяснимая
// замена настоящей рекомендательной системы - "улучшать" ее не нужно.
const (
	SimilarPriceBandLow  = 0.7
	SimilarPriceBandHigh = 1.3
	SimilarListingsLimit = 3

	FeaturedListingsLimit = 6
)

// Operator - оператор предиката запроса к контент-хранилищу.
type Operator string

const (
	OpEqual    Operator = "=="
	OpNotEqual Operator = "!="
	OpGte      Operator = ">="
	OpLte      Operator = "<="
	OpIn       Operator = "in"
	// OpMatch - регистронезависимый поиск подстроки. Для поля FieldLocation
	// адаптер разворачивает его в дизъюнкцию по городу и области -
	// единственный OR во всем построителе.
	OpMatch Operator = "match"
)

// Имена полей документа, к которым строятся предикаты. Сопоставление
// с путями в схеме хранилища выполняет адаптер, в одном месте.
const (
	FieldID        = "id"
	FieldSlug      = "slug"
	FieldStatus    = "status"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldBedrooms  = "bedrooms"
	FieldLocation  = "location"
	FieldFeatured  = "featured"
	FieldPublished = "publishedAt"
)

// Predicate - тройка {поле, оператор, значение}. Запрос - это конъюнкция
// независимых предикатов; значения никогда не интерполируются в строку
// запроса, а передаются параметрами (защита от инъекций).
type Predicate struct {
	Field string
	Op    Operator
	Value interface{}
}

// Ordering - порядок выдачи.
type Ordering struct {
	Field      string
	Descending bool
}

// ListingQuery - дескриптор запроса, потребляемый адаптером
// контент-хранилища: предикаты + порядок + срез выдачи.
type ListingQuery struct {
	Predicates []Predicate
	Order      Ordering

	Offset int
	// Limit == 0 означает "без ограничения".
	Limit int
}

func newestFirst() Ordering {
	return Ordering{Field: FieldPublished, Descending: true}
}

// BuildBrowseQuery переводит нормализованный фильтр в запрос выборки.
// Порядок всегда "новые сверху" - пользовательской сортировки нет.
// minPrice > maxPrice сознательно не корректируется: такой запрос
// законно вернет пустой результат.
func BuildBrowseQuery(f ListingFilter, limit, offset int) ListingQuery {
	q := ListingQuery{Order: newestFirst(), Limit: limit, Offset: offset}

	if f.Status != "" {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldStatus, Op: OpEqual, Value: f.Status})
	}
	if f.Category != "" {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldCategory, Op: OpEqual, Value: f.Category})
	}
	if f.MinPrice != nil {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldPrice, Op: OpGte, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldPrice, Op: OpLte, Value: *f.MaxPrice})
	}
	if f.MinBedrooms != nil {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldBedrooms, Op: OpGte, Value: *f.MinBedrooms})
	}
	if f.LocationText != "" {
		q.Predicates = append(q.Predicates, Predicate{Field: FieldLocation, Op: OpMatch, Value: f.LocationText})
	}

	return q
}

// BuildSlugQuery строит запрос одного объявления по slug.
func BuildSlugQuery(slug string) ListingQuery {
	return ListingQuery{
		Predicates: []Predicate{
			{Field: FieldSlug, Op: OpEqual, Value: slug},
		},
		Order: newestFirst(),
		Limit: 1,
	}
}

// BuildFeaturedQuery - подборка для слайдера на главной.
func BuildFeaturedQuery() ListingQuery {
	return ListingQuery{
		Predicates: []Predicate{
			{Field: FieldFeatured, Op: OpEqual, Value: true},
			{Field: FieldStatus, Op: OpIn, Value: []string{StatusForSale, StatusForRent}},
		},
		Order: newestFirst(),
		Limit: FeaturedListingsLimit,
	}
}

// BuildSimilarListingsQuery строит запрос похожих объявлений: та же
// категория, цена в коридоре [0.7*P, 1.3*P] включительно, проданные и
// сданные исключаются, само объявление исключается по идентификатору.
func BuildSimilarListingsQuery(category string, price float64, excludeID string) ListingQuery {
	return ListingQuery{
		Predicates: []Predicate{
			{Field: FieldCategory, Op: OpEqual, Value: category},
			{Field: FieldID, Op: OpNotEqual, Value: excludeID},
			{Field: FieldPrice, Op: OpGte, Value: price * SimilarPriceBandLow},
			{Field: FieldPrice, Op: OpLte, Value: price * SimilarPriceBandHigh},
			{Field: FieldStatus, Op: OpIn, Value: []string{StatusForSale, StatusForRent}},
		},
		Order: newestFirst(),
		Limit: SimilarListingsLimit,
	}
}
