package sanity

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

// Единственное место, где дескриптор запроса превращается в синтаксис
// хранилища. Ядро оперирует тройками {поле, оператор, значение} и ничего
// не знает про GROQ.

// listingProjection - набор полей документа, который забираем для карточек
// и детальной страницы.
const listingProjection = `
  _id,
  title,
  slug,
  propertyType,
  status,
  price,
  currency,
  description,
  location,
  bedrooms,
  bathrooms,
  area,
  images,
  features,
  yearBuilt,
  parking,
  virtualTourUrl,
  featured,
  publishedAt
`

// Сопоставление доменных имен полей с путями в схеме документа.
var fieldPaths = map[string]string{
	domain.FieldID:        "_id",
	domain.FieldSlug:      "slug.current",
	domain.FieldStatus:    "status",
	domain.FieldCategory:  "propertyType",
	domain.FieldPrice:     "price",
	domain.FieldBedrooms:  "bedrooms",
	domain.FieldFeatured:  "featured",
	domain.FieldPublished: "publishedAt",
}

// buildConditions сериализует предикаты в GROQ-условия. Каждое значение
// уходит в параметр $pN, что делает инъекцию через значение невозможной.
func buildConditions(predicates []domain.Predicate) ([]string, map[string]interface{}, error) {
	conditions := make([]string, 0, len(predicates))
	params := make(map[string]interface{}, len(predicates))

	for i, p := range predicates {
		name := fmt.Sprintf("p%d", i)

		// Текстовый поиск по локации - единственный OR во всем построителе:
		// подстрока ищется в городе ИЛИ области.
		if p.Field == domain.FieldLocation && p.Op == domain.OpMatch {
			conditions = append(conditions, fmt.Sprintf("(location.city match $%s || location.county match $%s)", name, name))
			params[name] = fmt.Sprintf("*%v*", p.Value)
			continue
		}

		path, ok := fieldPaths[p.Field]
		if !ok {
			return nil, nil, fmt.Errorf("groq: unknown predicate field %q", p.Field)
		}

		switch p.Op {
		case domain.OpEqual, domain.OpNotEqual, domain.OpGte, domain.OpLte:
			conditions = append(conditions, fmt.Sprintf("%s %s $%s", path, p.Op, name))
		case domain.OpIn:
			conditions = append(conditions, fmt.Sprintf("%s in $%s", path, name))
		default:
			return nil, nil, fmt.Errorf("groq: unsupported operator %q for field %q", p.Op, p.Field)
		}
		params[name] = p.Value
	}

	return conditions, params, nil
}

func buildFilterExpr(predicates []domain.Predicate) (string, map[string]interface{}, error) {
	conditions, params, err := buildConditions(predicates)
	if err != nil {
		return "", nil, err
	}

	var expr strings.Builder
	expr.WriteString(`*[_type == "property"`)
	for _, cond := range conditions {
		expr.WriteString(" && ")
		expr.WriteString(cond)
	}
	expr.WriteString("]")

	return expr.String(), params, nil
}

// buildListingQuery собирает полный GROQ-запрос: фильтр, сортировка,
// срез выдачи, проекция.
func buildListingQuery(q domain.ListingQuery) (string, map[string]interface{}, error) {
	filterExpr, params, err := buildFilterExpr(q.Predicates)
	if err != nil {
		return "", nil, err
	}

	orderPath, ok := fieldPaths[q.Order.Field]
	if !ok {
		return "", nil, fmt.Errorf("groq: unknown ordering field %q", q.Order.Field)
	}
	direction := "asc"
	if q.Order.Descending {
		direction = "desc"
	}

	var groq strings.Builder
	groq.WriteString(filterExpr)
	groq.WriteString(fmt.Sprintf(" | order(%s %s)", orderPath, direction))
	if q.Limit > 0 {
		groq.WriteString(fmt.Sprintf(" [%d...%d]", q.Offset, q.Offset+q.Limit))
	}
	groq.WriteString(" {")
	groq.WriteString(listingProjection)
	groq.WriteString("}")

	return groq.String(), params, nil
}

// buildCountQuery считает документы под теми же предикатами,
// игнорируя срез выдачи.
func buildCountQuery(q domain.ListingQuery) (string, map[string]interface{}, error) {
	filterExpr, params, err := buildFilterExpr(q.Predicates)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("count(%s)", filterExpr), params, nil
}

// countsByStatusQuery - агрегат для главной страницы. Значения статусов -
// константы схемы, пользовательского ввода здесь нет.
const countsByStatusQuery = `{
  "total": count(*[_type == "property"]),
  "forSale": count(*[_type == "property" && status == "for-sale"]),
  "forRent": count(*[_type == "property" && status == "for-rent"])
}`
