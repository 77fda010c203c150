package domain

// Category is the closed set of spending categories. Adding a value here is a
// schema change, not a runtime operation.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryGroceries     Category = "groceries"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories returns every spending category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryGroceries,
		CategoryTransport,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryGroceries, CategoryTransport, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}
