package model

// Category classifies a transaction. The set is closed: aggregation reports
// every category, including those with a zero total.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryIncome        Category = "Income"
	CategoryOther         Category = "Other"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealth,
		CategoryIncome,
		CategoryOther,
	}
}

// ParseCategory maps a stored string onto the closed set. Unknown values
// normalize to Other so old or hand-edited data still loads.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if s == string(c) {
			return c
		}
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}
