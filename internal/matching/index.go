package matching

import "github.com/TemirB/foodcart/internal/domain"

// Index maps a restaurant to the products it currently stocks.
type Index map[int64]map[int64]struct{}

// BuildIndex keeps only available menu rows.
func BuildIndex(items []domain.MenuItem) Index {
	idx := make(Index)
	for _, it := range items {
		if !it.Available {
			continue
		}
		products, ok := idx[it.RestaurantID]
		if !ok {
			products = make(map[int64]struct{})
			idx[it.RestaurantID] = products
		}
		products[it.ProductID] = struct{}{}
	}
	return idx
}

// Stocks reports whether restaurantID has every product in required.
// An empty required set is never satisfied.
func (idx Index) Stocks(restaurantID int64, required map[int64]struct{}) bool {
	if len(required) == 0 {
		return false
	}
	products := idx[restaurantID]
	if len(products) < len(required) {
		return false
	}
	for id := range required {
		if _, ok := products[id]; !ok {
			return false
		}
	}
	return true
}

// Candidates returns the IDs of restaurants stocking all of required.
func (idx Index) Candidates(required map[int64]struct{}) []int64 {
	var ids []int64
	for id := range idx {
		if idx.Stocks(id, required) {
			ids = append(ids, id)
		}
	}
	return ids
}
