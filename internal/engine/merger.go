package engine

import "carmatch/backend/internal/model"

// Merge combines a turn-scoped delta into the conversation's accumulated
// parameters and returns the new state. It is a pure function: neither input
// is mutated, no I/O happens, and the result is fully determined by the
// arguments.
//
// Rules:
//   - a range bound present in the delta overwrites the accumulated bound
//     (restating "under 20000" replaces an earlier "under 30000" outright);
//   - negative set values union in and evict the same value from the
//     corresponding positive set;
//   - positive set values union in unless the value is already rejected —
//     sticky negation: a rejected value cannot be re-affirmed.
//
// Intent, clarification metadata and matchedCategory are recomputed by the
// completeness policy afterwards, never merged here.
func Merge(prior, delta model.RecommendationParameters) model.RecommendationParameters {
	out := clone(prior)

	if delta.MinPrice != nil {
		out.MinPrice = f64Ptr(*delta.MinPrice)
	}
	if delta.MaxPrice != nil {
		out.MaxPrice = f64Ptr(*delta.MaxPrice)
	}
	if delta.MinYear != nil {
		out.MinYear = intPtr(*delta.MinYear)
	}
	if delta.MaxYear != nil {
		out.MaxYear = intPtr(*delta.MaxYear)
	}
	if delta.MaxMileage != nil {
		out.MaxMileage = intPtr(*delta.MaxMileage)
	}
	if delta.MinEngineSize != nil {
		out.MinEngineSize = f64Ptr(*delta.MinEngineSize)
	}
	if delta.MaxEngineSize != nil {
		out.MaxEngineSize = f64Ptr(*delta.MaxEngineSize)
	}
	if delta.MinHorsePower != nil {
		out.MinHorsePower = intPtr(*delta.MinHorsePower)
	}
	if delta.MaxHorsePower != nil {
		out.MaxHorsePower = intPtr(*delta.MaxHorsePower)
	}

	// Negations first: rejecting a value always wins over a previously
	// stated preference for it.
	out.RejectedMakes = unionInto(out.RejectedMakes, delta.RejectedMakes)
	out.PreferredMakes = removeAll(out.PreferredMakes, delta.RejectedMakes)
	out.RejectedVehicleTypes = unionInto(out.RejectedVehicleTypes, delta.RejectedVehicleTypes)
	out.PreferredVehicleTypes = removeAll(out.PreferredVehicleTypes, delta.RejectedVehicleTypes)
	out.RejectedFuelTypes = unionInto(out.RejectedFuelTypes, delta.RejectedFuelTypes)
	out.PreferredFuelTypes = removeAll(out.PreferredFuelTypes, delta.RejectedFuelTypes)
	out.RejectedFeatures = unionInto(out.RejectedFeatures, delta.RejectedFeatures)
	out.DesiredFeatures = removeAll(out.DesiredFeatures, delta.RejectedFeatures)

	// Positives union in, silently dropping anything already rejected.
	out.PreferredMakes = unionExcept(out.PreferredMakes, delta.PreferredMakes, out.RejectedMakes)
	out.PreferredVehicleTypes = unionExcept(out.PreferredVehicleTypes, delta.PreferredVehicleTypes, out.RejectedVehicleTypes)
	out.PreferredFuelTypes = unionExcept(out.PreferredFuelTypes, delta.PreferredFuelTypes, out.RejectedFuelTypes)
	out.DesiredFeatures = unionExcept(out.DesiredFeatures, delta.DesiredFeatures, out.RejectedFeatures)
	out.Transmission = unionInto(out.Transmission, delta.Transmission)

	return out
}

// clone deep-copies the parameters so Merge never aliases its input.
func clone(p model.RecommendationParameters) model.RecommendationParameters {
	out := p
	if p.MinPrice != nil {
		out.MinPrice = f64Ptr(*p.MinPrice)
	}
	if p.MaxPrice != nil {
		out.MaxPrice = f64Ptr(*p.MaxPrice)
	}
	if p.MinYear != nil {
		out.MinYear = intPtr(*p.MinYear)
	}
	if p.MaxYear != nil {
		out.MaxYear = intPtr(*p.MaxYear)
	}
	if p.MaxMileage != nil {
		out.MaxMileage = intPtr(*p.MaxMileage)
	}
	if p.MinEngineSize != nil {
		out.MinEngineSize = f64Ptr(*p.MinEngineSize)
	}
	if p.MaxEngineSize != nil {
		out.MaxEngineSize = f64Ptr(*p.MaxEngineSize)
	}
	if p.MinHorsePower != nil {
		out.MinHorsePower = intPtr(*p.MinHorsePower)
	}
	if p.MaxHorsePower != nil {
		out.MaxHorsePower = intPtr(*p.MaxHorsePower)
	}
	out.PreferredMakes = copySlice(p.PreferredMakes)
	out.PreferredVehicleTypes = copySlice(p.PreferredVehicleTypes)
	out.PreferredFuelTypes = copySlice(p.PreferredFuelTypes)
	out.DesiredFeatures = copySlice(p.DesiredFeatures)
	out.Transmission = copySlice(p.Transmission)
	out.RejectedMakes = copySlice(p.RejectedMakes)
	out.RejectedVehicleTypes = copySlice(p.RejectedVehicleTypes)
	out.RejectedFuelTypes = copySlice(p.RejectedFuelTypes)
	out.RejectedFeatures = copySlice(p.RejectedFeatures)
	out.ClarificationNeededFor = copySlice(p.ClarificationNeededFor)
	return out
}

func copySlice[T ~string](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func appendUnique[T ~string](dst []T, v T) []T {
	for _, existing := range dst {
		if existing == v {
			return dst
		}
	}
	return append(dst, v)
}

func unionInto[T ~string](dst, src []T) []T {
	for _, v := range src {
		dst = appendUnique(dst, v)
	}
	return dst
}

func unionExcept[T ~string](dst, src, excluded []T) []T {
	for _, v := range src {
		if contains(excluded, v) {
			continue
		}
		dst = appendUnique(dst, v)
	}
	return dst
}

func removeAll[T ~string](dst, toRemove []T) []T {
	if len(dst) == 0 || len(toRemove) == 0 {
		return dst
	}
	out := dst[:0]
	for _, v := range dst {
		if !contains(toRemove, v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func contains[T ~string](list []T, v T) bool {
	for _, existing := range list {
		if existing == v {
			return true
		}
	}
	return false
}
