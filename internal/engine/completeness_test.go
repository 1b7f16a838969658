package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carmatch/backend/internal/engine"
	"carmatch/backend/internal/model"
)

func TestCompleteness_BothDimensionsMissing(t *testing.T) {
	policy := engine.CompletenessPolicy{}
	merged := model.RecommendationParameters{}
	delta := model.RecommendationParameters{Intent: model.IntentVehicleSearch}

	d := policy.Apply(&merged, delta)

	assert.False(t, d.Proceed)
	assert.False(t, d.Fallback)
	assert.Contains(t, d.Message, "budget")
	assert.Contains(t, d.Message, "kind of vehicle")
	assert.True(t, merged.ClarificationNeeded)
	assert.Equal(t, []string{engine.FieldBudget, engine.FieldCategory}, merged.ClarificationNeededFor)
}

func TestCompleteness_OneDimensionIsEnough(t *testing.T) {
	policy := engine.CompletenessPolicy{}

	t.Run("budget only", func(t *testing.T) {
		price := 30000.0
		merged := model.RecommendationParameters{MaxPrice: &price}
		d := policy.Apply(&merged, model.RecommendationParameters{Intent: model.IntentVehicleSearch})
		assert.True(t, d.Proceed)
		assert.False(t, merged.ClarificationNeeded)
		assert.Nil(t, merged.ClarificationNeededFor)
	})

	t.Run("category only", func(t *testing.T) {
		merged := model.RecommendationParameters{
			PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
		}
		d := policy.Apply(&merged, model.RecommendationParameters{Intent: model.IntentVehicleSearch})
		assert.True(t, d.Proceed)
	})

	t.Run("make counts as a category hint", func(t *testing.T) {
		merged := model.RecommendationParameters{PreferredMakes: []string{"BMW"}}
		d := policy.Apply(&merged, model.RecommendationParameters{Intent: model.IntentVehicleSearch})
		assert.True(t, d.Proceed)
	})
}

func TestCompleteness_ClarificationAnswerAlwaysProceeds(t *testing.T) {
	// Never ask the same question twice in a row, even if the answer did not
	// actually fill anything in.
	policy := engine.CompletenessPolicy{}
	merged := model.RecommendationParameters{}
	delta := model.RecommendationParameters{Intent: model.IntentClarificationAnswer}

	d := policy.Apply(&merged, delta)

	assert.True(t, d.Proceed)
	assert.False(t, merged.ClarificationNeeded)
}

func TestCompleteness_Fallback(t *testing.T) {
	policy := engine.CompletenessPolicy{}
	merged := model.RecommendationParameters{ClarificationNeeded: true, ClarificationNeededFor: []string{"budget"}}
	delta := model.RecommendationParameters{Intent: model.IntentConfusedFallback}

	d := policy.Apply(&merged, delta)

	assert.True(t, d.Fallback)
	assert.False(t, d.Proceed)
	assert.Equal(t, engine.FallbackMessage, d.Message)
	assert.False(t, merged.ClarificationNeeded, "fallback clears any pending clarification")
	assert.Nil(t, merged.ClarificationNeededFor)
}

func TestCompleteness_MatchedCategory(t *testing.T) {
	policy := engine.CompletenessPolicy{}

	t.Run("single new vehicle type", func(t *testing.T) {
		price := 20000.0
		merged := model.RecommendationParameters{MaxPrice: &price, PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV}}
		delta := model.RecommendationParameters{
			Intent:                model.IntentVehicleSearch,
			PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
		}
		policy.Apply(&merged, delta)
		assert.Equal(t, "SUV", merged.MatchedCategory)
	})

	t.Run("single new make when no type was mentioned", func(t *testing.T) {
		merged := model.RecommendationParameters{PreferredMakes: []string{"Audi"}}
		delta := model.RecommendationParameters{
			Intent:         model.IntentVehicleSearch,
			PreferredMakes: []string{"Audi"},
		}
		policy.Apply(&merged, delta)
		assert.Equal(t, "Audi", merged.MatchedCategory)
	})

	t.Run("ambiguous turn sets nothing", func(t *testing.T) {
		merged := model.RecommendationParameters{
			PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV, model.VehicleWagon},
		}
		delta := model.RecommendationParameters{
			Intent:                model.IntentVehicleSearch,
			PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV, model.VehicleWagon},
		}
		policy.Apply(&merged, delta)
		assert.Empty(t, merged.MatchedCategory)
	})
}

func TestCompleteness_IntentIsCarriedOntoMergedState(t *testing.T) {
	policy := engine.CompletenessPolicy{}
	merged := model.RecommendationParameters{Intent: model.IntentVehicleSearch}
	delta := model.RecommendationParameters{Intent: model.IntentClarificationAnswer}

	policy.Apply(&merged, delta)

	assert.Equal(t, model.IntentClarificationAnswer, merged.Intent)
}
