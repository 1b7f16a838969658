package engine

import (
	"fmt"
	"strings"

	"carmatch/backend/internal/model"
)

// Names used in clarificationNeededFor. These are the two required
// conversation dimensions: without a budget and some category hint there is
// nothing sensible to query.
const (
	FieldBudget   = "budget"
	FieldCategory = "category"
)

// FallbackMessage is the generic rephrase prompt used whenever a turn could
// not be understood or could not be served in time.
const FallbackMessage = "Sorry, I didn't quite catch that. Could you rephrase what kind of vehicle you're looking for?"

// Decision is the completeness policy's verdict for one turn.
type Decision struct {
	// Proceed is true when the inventory query should run.
	Proceed bool
	// Fallback is true when the turn was not understood at all. Proceed is
	// always false in that case and Message carries the rephrase prompt.
	Fallback bool
	// Message is the clarification question or fallback prompt. Empty when
	// Proceed is true.
	Message string
}

// CompletenessPolicy decides, per turn, whether the accumulated parameters
// are answerable or a follow-up question is needed. Each required dimension
// behaves as a two-state machine: awaiting input until populated, satisfied
// afterwards, with no terminal state.
type CompletenessPolicy struct{}

// Apply evaluates merged parameters against the delta's intent. It rewrites
// the metadata fields of merged (intent, clarification flags, matched
// category) and returns the decision.
func (CompletenessPolicy) Apply(merged *model.RecommendationParameters, delta model.RecommendationParameters) Decision {
	merged.Intent = delta.Intent
	merged.ClarificationNeeded = false
	merged.ClarificationNeededFor = nil
	setMatchedCategory(merged, delta)

	switch delta.Intent {
	case model.IntentConfusedFallback:
		return Decision{Fallback: true, Message: FallbackMessage}
	case model.IntentClarificationAnswer:
		// Never ask the same question twice in a row: an answer to a
		// clarification always proceeds to resolution, even when the
		// required fields are still thin.
		return Decision{Proceed: true}
	}

	var missing []string
	if !merged.HasBudget() {
		missing = append(missing, FieldBudget)
	}
	if !merged.HasCategoryHint() {
		missing = append(missing, FieldCategory)
	}
	// Clarify only when no required dimension is satisfied at all. Either a
	// budget or a category hint alone is enough to run a meaningful query.
	if len(missing) < 2 {
		return Decision{Proceed: true}
	}

	merged.ClarificationNeeded = true
	merged.ClarificationNeededFor = missing
	return Decision{Message: clarificationQuestion(missing)}
}

func clarificationQuestion(missing []string) string {
	var asks []string
	for _, f := range missing {
		switch f {
		case FieldBudget:
			asks = append(asks, "what your budget is")
		case FieldCategory:
			asks = append(asks, "what kind of vehicle you're after (a body style, make, or fuel type)")
		}
	}
	return fmt.Sprintf("Happy to help! Could you tell me %s?", strings.Join(asks, " and "))
}

// setMatchedCategory records a free-text UI hint when exactly one vehicle
// type or make was newly confirmed this turn. It never affects the query.
func setMatchedCategory(merged *model.RecommendationParameters, delta model.RecommendationParameters) {
	merged.MatchedCategory = ""
	if len(delta.PreferredVehicleTypes) == 1 {
		merged.MatchedCategory = string(delta.PreferredVehicleTypes[0])
		return
	}
	if len(delta.PreferredMakes) == 1 {
		merged.MatchedCategory = delta.PreferredMakes[0]
	}
}
