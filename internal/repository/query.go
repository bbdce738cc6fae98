package repository

import (
	"sort"

	"github.com/ecommerce-catalog/catalog-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildFilterQuery composes a single selector from the optional filter
// fields. Free text becomes a $text base query, otherwise the base matches
// everything; every present structured criterion is ANDed onto it. With no
// criteria the base selector is returned as-is.
func BuildFilterQuery(filter dto.ProductSearchFilter) bson.M {
	query := bson.M{}

	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	var criteria []bson.M

	if filter.Category != "" {
		criteria = append(criteria, bson.M{"category": filter.Category})
	}

	if filter.Brand != "" {
		criteria = append(criteria, bson.M{"brand": filter.Brand})
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		priceRange := bson.M{}
		if filter.MinPrice != nil {
			priceRange["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			priceRange["$lte"] = *filter.MaxPrice
		}
		criteria = append(criteria, bson.M{"price": priceRange})
	}

	// inStock=false means "don't care", not "out of stock only"
	if filter.InStock != nil && *filter.InStock {
		criteria = append(criteria, bson.M{"stock": bson.M{"$gt": 0}})
	}

	if len(filter.Tags) > 0 {
		criteria = append(criteria, bson.M{"tags": bson.M{"$in": filter.Tags}})
	}

	if len(criteria) > 0 {
		query["$and"] = criteria
	}

	return query
}

// DistinctValues shapes a raw distinct projection into the wire contract
// of the distinct-value lookups: strings only, no null or empty entries,
// sorted ascending.
func DistinctValues(raw []interface{}) []string {
	seen := make(map[string]struct{}, len(raw))
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		values = append(values, s)
	}

	sort.Strings(values)
	return values
}

// BuildFindOptions translates the page window and sort spec into driver
// find options.
func BuildFindOptions(page dto.PageRequest) *options.FindOptions {
	opts := options.Find().SetSkip(page.Skip()).SetLimit(page.Limit())

	if page.SortBy != "" {
		direction := 1
		if page.SortDesc {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: page.SortBy, Value: direction}})
	}

	return opts
}
