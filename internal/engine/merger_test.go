package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmatch/backend/internal/engine"
	"carmatch/backend/internal/model"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func TestMerge_RangesOverwrite(t *testing.T) {
	prior := model.RecommendationParameters{MaxPrice: f64(30000), MinYear: i(2015)}
	delta := model.RecommendationParameters{MaxPrice: f64(20000)}

	out := engine.Merge(prior, delta)

	require.NotNil(t, out.MaxPrice)
	assert.Equal(t, 20000.0, *out.MaxPrice, "a restated bound replaces, it does not intersect")
	require.NotNil(t, out.MinYear)
	assert.Equal(t, 2015, *out.MinYear, "untouched bounds survive")
}

func TestMerge_PositivesUnion(t *testing.T) {
	prior := model.RecommendationParameters{
		PreferredMakes:     []string{"BMW"},
		PreferredFuelTypes: []model.FuelType{model.FuelPetrol},
	}
	delta := model.RecommendationParameters{
		PreferredMakes:        []string{"Audi", "BMW"},
		PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
	}

	out := engine.Merge(prior, delta)

	assert.Equal(t, []string{"BMW", "Audi"}, out.PreferredMakes)
	assert.Equal(t, []model.VehicleType{model.VehicleSUV}, out.PreferredVehicleTypes)
	assert.Equal(t, []model.FuelType{model.FuelPetrol}, out.PreferredFuelTypes)
}

func TestMerge_NegationEvictsPositive(t *testing.T) {
	prior := model.RecommendationParameters{
		PreferredFuelTypes: []model.FuelType{model.FuelDiesel, model.FuelElectric},
	}
	delta := model.RecommendationParameters{
		RejectedFuelTypes: []model.FuelType{model.FuelDiesel},
	}

	out := engine.Merge(prior, delta)

	assert.Equal(t, []model.FuelType{model.FuelElectric}, out.PreferredFuelTypes)
	assert.Equal(t, []model.FuelType{model.FuelDiesel}, out.RejectedFuelTypes)
}

func TestMerge_StickyNegation(t *testing.T) {
	// Once rejected, a value cannot be re-affirmed by a later positive mention.
	prior := model.RecommendationParameters{
		RejectedFuelTypes: []model.FuelType{model.FuelDiesel},
	}
	delta := model.RecommendationParameters{
		PreferredFuelTypes: []model.FuelType{model.FuelDiesel, model.FuelHybrid},
	}

	out := engine.Merge(prior, delta)

	assert.Equal(t, []model.FuelType{model.FuelHybrid}, out.PreferredFuelTypes)
	assert.Equal(t, []model.FuelType{model.FuelDiesel}, out.RejectedFuelTypes)
}

func TestMerge_ConflictWithinOneDelta(t *testing.T) {
	// A value both affirmed and rejected in the same turn ends up rejected.
	delta := model.RecommendationParameters{
		PreferredMakes: []string{"Ford"},
		RejectedMakes:  []string{"Ford"},
	}

	out := engine.Merge(model.RecommendationParameters{}, delta)

	assert.Empty(t, out.PreferredMakes)
	assert.Equal(t, []string{"Ford"}, out.RejectedMakes)
}

func TestMerge_Idempotent(t *testing.T) {
	prior := model.RecommendationParameters{
		MaxPrice:              f64(30000),
		PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
		RejectedFuelTypes:     []model.FuelType{model.FuelDiesel},
		DesiredFeatures:       []string{"sunroof"},
	}
	delta := model.RecommendationParameters{
		MaxPrice:              f64(25000),
		PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
		RejectedFuelTypes:     []model.FuelType{model.FuelDiesel},
	}

	once := engine.Merge(prior, delta)
	twice := engine.Merge(once, delta)

	assert.Equal(t, once, twice)
}

func TestMerge_EmptyDeltaIsIdentity(t *testing.T) {
	prior := model.RecommendationParameters{
		MinPrice:       f64(10000),
		MaxPrice:       f64(30000),
		PreferredMakes: []string{"Toyota"},
		Transmission:   []model.TransmissionType{model.TransmissionAutomatic},
	}

	out := engine.Merge(prior, model.RecommendationParameters{})

	assert.Equal(t, prior.PreferredMakes, out.PreferredMakes)
	assert.Equal(t, prior.Transmission, out.Transmission)
	assert.Equal(t, *prior.MinPrice, *out.MinPrice)
	assert.Equal(t, *prior.MaxPrice, *out.MaxPrice)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	prior := model.RecommendationParameters{
		PreferredMakes: []string{"BMW", "Audi"},
		MaxPrice:       f64(30000),
	}
	delta := model.RecommendationParameters{
		RejectedMakes: []string{"BMW"},
		MaxPrice:      f64(20000),
	}

	out := engine.Merge(prior, delta)
	out.PreferredMakes = append(out.PreferredMakes, "Ford")
	*out.MaxPrice = 1

	assert.Equal(t, []string{"BMW", "Audi"}, prior.PreferredMakes)
	assert.Equal(t, 30000.0, *prior.MaxPrice)
	assert.Equal(t, 20000.0, *delta.MaxPrice)
}

func TestMerge_FeatureSetsFollowTheSameRules(t *testing.T) {
	prior := model.RecommendationParameters{
		DesiredFeatures: []string{"sunroof", "leather seats"},
	}
	delta := model.RecommendationParameters{
		RejectedFeatures: []string{"leather seats"},
		DesiredFeatures:  []string{"navigation", "leather seats"},
	}

	out := engine.Merge(prior, delta)

	assert.Equal(t, []string{"sunroof", "navigation"}, out.DesiredFeatures)
	assert.Equal(t, []string{"leather seats"}, out.RejectedFeatures)
}
