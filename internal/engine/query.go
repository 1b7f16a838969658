package engine

import (
	"strings"

	"carmatch/backend/internal/model"
)

// DefaultMaxResults bounds the ranked vehicle list when the caller does not
// say otherwise.
const DefaultMaxResults = 5

// QueryOrder selects the ranking applied when inventory exceeds the limit.
type QueryOrder int

const (
	// OrderListingRecency ranks most recently listed first. This is the
	// default. Ties always break by identifier ascending for determinism.
	OrderListingRecency QueryOrder = iota
	// OrderPriceAscending ranks cheapest first.
	OrderPriceAscending
)

// QuerySpec is the deterministic filter and ranking specification handed to
// the inventory collaborator. Inclusion is AND across fields and OR within a
// field's positive set; exclusion is evaluated afterwards and always wins.
type QuerySpec struct {
	Params model.RecommendationParameters
	Order  QueryOrder
	Limit  int
}

// BuildQuery converts merged parameters into a query spec with the default
// recency ranking.
func BuildQuery(params model.RecommendationParameters, limit int) QuerySpec {
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	return QuerySpec{Params: params, Order: OrderListingRecency, Limit: limit}
}

// Matches is the reference predicate for a QuerySpec: a vehicle belongs to
// the result set iff it passes every populated range bound and every
// non-empty positive set, and matches no rejected value. SQL execution of a
// QuerySpec must agree with this predicate.
func (s QuerySpec) Matches(v model.Vehicle) bool {
	p := s.Params

	if p.MinPrice != nil && v.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && v.Price > *p.MaxPrice {
		return false
	}
	if p.MinYear != nil && v.Year < *p.MinYear {
		return false
	}
	if p.MaxYear != nil && v.Year > *p.MaxYear {
		return false
	}
	if p.MaxMileage != nil && v.Mileage > *p.MaxMileage {
		return false
	}
	if p.MinEngineSize != nil && v.EngineSize < *p.MinEngineSize {
		return false
	}
	if p.MaxEngineSize != nil && v.EngineSize > *p.MaxEngineSize {
		return false
	}
	if p.MinHorsePower != nil && v.HorsePower < *p.MinHorsePower {
		return false
	}
	if p.MaxHorsePower != nil && v.HorsePower > *p.MaxHorsePower {
		return false
	}

	if len(p.PreferredMakes) > 0 && !containsFold(p.PreferredMakes, v.Make) {
		return false
	}
	if len(p.PreferredVehicleTypes) > 0 && !contains(p.PreferredVehicleTypes, v.VehicleType) {
		return false
	}
	if len(p.PreferredFuelTypes) > 0 && !contains(p.PreferredFuelTypes, v.FuelType) {
		return false
	}
	if len(p.Transmission) > 0 && !contains(p.Transmission, v.Transmission) {
		return false
	}
	// Desired features are OR within the field: any one present suffices.
	if len(p.DesiredFeatures) > 0 && !hasAnyFeature(v.Features, p.DesiredFeatures) {
		return false
	}

	// Exclusion always wins, even over a positive match on another field.
	if containsFold(p.RejectedMakes, v.Make) {
		return false
	}
	if contains(p.RejectedVehicleTypes, v.VehicleType) {
		return false
	}
	if contains(p.RejectedFuelTypes, v.FuelType) {
		return false
	}
	if hasAnyFeature(v.Features, p.RejectedFeatures) {
		return false
	}

	return true
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func hasAnyFeature(have []string, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
