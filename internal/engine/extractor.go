package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"carmatch/backend/internal/model"
)

// ParameterExtractor turns one free-text message into a turn-scoped delta of
// recognized search criteria. It never fails: text it cannot make sense of
// yields an empty delta with the CONFUSED_FALLBACK intent, so no parse error
// ever escapes this component.
type ParameterExtractor struct {
	vocab *vocabulary
}

func NewParameterExtractor() *ParameterExtractor {
	return &ParameterExtractor{vocab: newVocabulary()}
}

// Building blocks for the numeric range grammar. Unit-specific patterns run
// before the generic price patterns and blank out what they consume, so a
// number is only ever claimed by one field.
const (
	numPat  = `([0-9][0-9.,]*)\s*(k\b)?`
	yearPat = `(19[5-9][0-9]|20[0-3][0-9])`
	milUnit = `(?:km|kms|kilometers|kilometres|miles|mi)`
	hpUnit  = `(?:hp|bhp|ps|horsepower|horse power)`
	volUnit = `(?:l|litre|liter|litres|liters)`
	curSym  = `([€$£])`
	curWord = `(euros?|eur|dollars?|usd|pounds?|gbp)`
	underW  = `(?:under|below|cheaper than|less than|at most|up to|max(?:imum)?(?: of)?|no more than)`
	overW   = `(?:over|above|more than|at least|min(?:imum)?(?: of)?|upwards of|starting (?:at|from))`
	aroundW = `(?:around|about|roughly|approximately)`
)

var (
	reBetweenYears = regexp.MustCompile(`\bbetween\s+` + yearPat + `\s+and\s+` + yearPat + `\b`)
	reBetweenPrice = regexp.MustCompile(`\bbetween\s+[€$£]?\s*` + numPat + `\s+and\s+[€$£]?\s*` + numPat + `\b`)

	reMileageMax     = regexp.MustCompile(`\b` + underW + `\s+` + numPat + `\s*` + milUnit + `\b`)
	reMileageKeyword = regexp.MustCompile(`\bmileage\s+(?:of\s+)?` + underW + `\s+` + numPat + `\b`)
	reMileageOrLess  = regexp.MustCompile(`\b` + numPat + `\s*` + milUnit + `\s+(?:or less|max(?:imum)?|tops)\b`)

	reHPMin  = regexp.MustCompile(`\b` + overW + `\s+` + numPat + `\s*` + hpUnit + `\b`)
	reHPMax  = regexp.MustCompile(`\b` + underW + `\s+` + numPat + `\s*` + hpUnit + `\b`)
	reHPBare = regexp.MustCompile(`\b` + numPat + `\s*` + hpUnit + `\b`)

	reEngineMax  = regexp.MustCompile(`\b` + underW + `\s+([0-9]+(?:\.[0-9]+)?)\s*` + volUnit + `\b`)
	reEngineMin  = regexp.MustCompile(`\b` + overW + `\s+([0-9]+(?:\.[0-9]+)?)\s*` + volUnit + `\b`)
	reEngineBare = regexp.MustCompile(`\b([0-9]+(?:\.[0-9]+)?)\s*` + volUnit + `\b`)

	reYearMin     = regexp.MustCompile(`\b(?:after|since|from|newer than|younger than)\s+` + yearPat + `\b`)
	reYearMax     = regexp.MustCompile(`\b(?:before|older than|earlier than)\s+` + yearPat + `\b`)
	reYearOrLater = regexp.MustCompile(`\b` + yearPat + `\s+or\s+(?:newer|later)\b`)
	reYearOrOlder = regexp.MustCompile(`\b` + yearPat + `\s+or\s+(?:older|earlier)\b`)
	reYearAround  = regexp.MustCompile(`\b` + aroundW + `\s+` + yearPat + `\b`)

	rePriceAround  = regexp.MustCompile(`\b` + aroundW + `\s+` + curSym + `?\s*` + numPat + `\s*` + curWord + `?`)
	rePriceMax     = regexp.MustCompile(`\b` + underW + `\s+` + curSym + `?\s*` + numPat + `\s*` + curWord + `?`)
	rePriceMin     = regexp.MustCompile(`\b` + overW + `\s+` + curSym + `?\s*` + numPat + `\s*` + curWord + `?`)
	rePriceSym     = regexp.MustCompile(curSym + `\s*` + numPat)
	rePriceWord    = regexp.MustCompile(`\b` + numPat + `\s*` + curWord + `\b`)
	reAmountAlone  = regexp.MustCompile(`^\s*` + curSym + `?\s*` + numPat + `\s*` + curWord + `?\s*$`)
	reThousandDots = regexp.MustCompile(`^[0-9]{1,3}(?:\.[0-9]{3})+$`)
)

var reSearchCue = regexp.MustCompile(`\b(?:look(?:ing)? for|find|search|show me|need|want|buy|purchase|recommend|suggest|interested in|car|vehicle|drive)\b`)
var reGreeting = regexp.MustCompile(`^\s*(?:hi|hello|hey|good (?:morning|afternoon|evening)|greetings)\b`)

// Extract parses one message into a delta. prior is read-only context used
// for disambiguation, e.g. to accept a bare number as a budget answer while
// a budget clarification is pending.
func (e *ParameterExtractor) Extract(turn *model.ChatTurn, prior model.RecommendationParameters) model.RecommendationParameters {
	delta := model.RecommendationParameters{}

	text := strings.ToLower(turn.Content)
	text = strings.NewReplacer("’", "'", "‘", "'").Replace(text)

	e.extractRanges(&delta, &text, turn, prior)
	e.extractCategories(&delta, text)
	e.extractFeatures(&delta, &text)

	switch {
	case turn.IsClarificationAnswer:
		delta.Intent = model.IntentClarificationAnswer
	case !delta.IsEmpty():
		delta.Intent = model.IntentVehicleSearch
	case reSearchCue.MatchString(text) || reGreeting.MatchString(text):
		delta.Intent = model.IntentVehicleSearch
	default:
		delta.Intent = model.IntentConfusedFallback
	}
	return delta
}

// extractRanges runs the numeric grammar over the working text, blanking
// every consumed span so later passes cannot re-claim the same number.
func (e *ParameterExtractor) extractRanges(delta *model.RecommendationParameters, text *string, turn *model.ChatTurn, prior model.RecommendationParameters) {
	priceCue := strings.Contains(*text, "price") || strings.Contains(*text, "budget") ||
		strings.Contains(*text, "cost") || strings.Contains(*text, "spend") || strings.Contains(*text, "pay")

	applyAll(text, reBetweenYears, func(sub []string) bool {
		lo, hi := atoiSafe(sub[1]), atoiSafe(sub[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		delta.MinYear, delta.MaxYear = intPtr(lo), intPtr(hi)
		return true
	})
	applyAll(text, reBetweenPrice, func(sub []string) bool {
		lo, okLo := parseAmount(sub[1], sub[2])
		hi, okHi := parseAmount(sub[3], sub[4])
		if !okLo || !okHi {
			return false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		delta.MinPrice, delta.MaxPrice = f64Ptr(lo), f64Ptr(hi)
		return true
	})

	mileage := func(sub []string) bool {
		v, ok := parseAmount(sub[1], sub[2])
		if !ok {
			return false
		}
		delta.MaxMileage = intPtr(int(v))
		return true
	}
	applyAll(text, reMileageMax, mileage)
	applyAll(text, reMileageKeyword, mileage)
	applyAll(text, reMileageOrLess, mileage)

	applyAll(text, reHPMin, func(sub []string) bool {
		if v, ok := parseAmount(sub[1], sub[2]); ok {
			delta.MinHorsePower = intPtr(int(v))
			return true
		}
		return false
	})
	applyAll(text, reHPMax, func(sub []string) bool {
		if v, ok := parseAmount(sub[1], sub[2]); ok {
			delta.MaxHorsePower = intPtr(int(v))
			return true
		}
		return false
	})
	applyAll(text, reHPBare, func(sub []string) bool {
		if v, ok := parseAmount(sub[1], sub[2]); ok {
			delta.MinHorsePower = intPtr(int(v))
			return true
		}
		return false
	})

	applyAll(text, reEngineMax, func(sub []string) bool {
		if v, err := strconv.ParseFloat(sub[1], 64); err == nil && v > 0 && v < 20 {
			delta.MaxEngineSize = f64Ptr(v)
			return true
		}
		return false
	})
	applyAll(text, reEngineMin, func(sub []string) bool {
		if v, err := strconv.ParseFloat(sub[1], 64); err == nil && v > 0 && v < 20 {
			delta.MinEngineSize = f64Ptr(v)
			return true
		}
		return false
	})
	applyAll(text, reEngineBare, func(sub []string) bool {
		if v, err := strconv.ParseFloat(sub[1], 64); err == nil && v > 0 && v < 20 {
			delta.MinEngineSize, delta.MaxEngineSize = f64Ptr(v), f64Ptr(v)
			return true
		}
		return false
	})

	applyAll(text, reYearMin, func(sub []string) bool {
		delta.MinYear = intPtr(atoiSafe(sub[1]))
		return true
	})
	applyAll(text, reYearMax, func(sub []string) bool {
		delta.MaxYear = intPtr(atoiSafe(sub[1]))
		return true
	})
	applyAll(text, reYearOrLater, func(sub []string) bool {
		delta.MinYear = intPtr(atoiSafe(sub[1]))
		return true
	})
	applyAll(text, reYearOrOlder, func(sub []string) bool {
		delta.MaxYear = intPtr(atoiSafe(sub[1]))
		return true
	})
	applyAll(text, reYearAround, func(sub []string) bool {
		y := atoiSafe(sub[1])
		delta.MinYear, delta.MaxYear = intPtr(y-1), intPtr(y+1)
		return true
	})

	// A value only counts as a price when a currency marker or "k" suffix is
	// present, or the magnitude is unmistakably money. Bare four-digit values
	// in the model-year range stay unclaimed unless the message talks about
	// money.
	acceptPrice := func(sym, word, k string, v float64) bool {
		if sym != "" || word != "" || k != "" || priceCue {
			return true
		}
		if v >= 1950 && v <= 2035 && v == math.Trunc(v) {
			return false
		}
		return v >= 500
	}

	applyAll(text, rePriceAround, func(sub []string) bool {
		v, ok := parseAmount(sub[2], sub[3])
		if !ok || !acceptPrice(sub[1], sub[4], sub[3], v) {
			return false
		}
		delta.MinPrice = f64Ptr(math.Round(v * 0.9))
		delta.MaxPrice = f64Ptr(math.Round(v * 1.1))
		return true
	})
	applyAll(text, rePriceMax, func(sub []string) bool {
		v, ok := parseAmount(sub[2], sub[3])
		if !ok || !acceptPrice(sub[1], sub[4], sub[3], v) {
			return false
		}
		delta.MaxPrice = f64Ptr(v)
		return true
	})
	applyAll(text, rePriceMin, func(sub []string) bool {
		v, ok := parseAmount(sub[2], sub[3])
		if !ok || !acceptPrice(sub[1], sub[4], sub[3], v) {
			return false
		}
		delta.MinPrice = f64Ptr(v)
		return true
	})
	barePrice := func(v float64) bool {
		if delta.MinPrice != nil || delta.MaxPrice != nil {
			return false
		}
		delta.MaxPrice = f64Ptr(v)
		return true
	}
	applyAll(text, rePriceSym, func(sub []string) bool {
		if v, ok := parseAmount(sub[2], sub[3]); ok {
			return barePrice(v)
		}
		return false
	})
	applyAll(text, rePriceWord, func(sub []string) bool {
		if v, ok := parseAmount(sub[1], sub[2]); ok {
			return barePrice(v)
		}
		return false
	})

	// A bare number as the whole message is only meaningful while a budget
	// clarification is pending.
	if delta.MinPrice == nil && delta.MaxPrice == nil &&
		(turn.IsClarificationAnswer || containsString(prior.ClarificationNeededFor, "budget")) {
		applyAll(text, reAmountAlone, func(sub []string) bool {
			v, ok := parseAmount(sub[2], sub[3])
			if !ok || v < 100 {
				return false
			}
			delta.MaxPrice = f64Ptr(v)
			return true
		})
	}
}

// extractCategories matches the controlled vocabulary against the message,
// tagging each hit positive or negative. A negation marker applies to the
// nearest following term only and is consumed by it.
func (e *ParameterExtractor) extractCategories(delta *model.RecommendationParameters, text string) {
	tokens := tokenize(text)
	usedNeg := make(map[int]bool)

	for i := 0; i < len(tokens); {
		entry, n := e.vocab.lookup(tokens, i)
		if n == 0 {
			i++
			continue
		}
		negated := false
		for back := i - 1; back >= 0 && back >= i-3; back-- {
			tok := tokens[back]
			if isNegationMarker(tok, tokens, back) {
				if !usedNeg[back] {
					usedNeg[back] = true
					negated = true
				}
				break
			}
			if !isFillerToken(tok) {
				break
			}
		}
		switch entry.kind {
		case kindMake:
			if negated {
				delta.RejectedMakes = appendUnique(delta.RejectedMakes, entry.canonical)
			} else {
				delta.PreferredMakes = appendUnique(delta.PreferredMakes, entry.canonical)
			}
		case kindVehicleType:
			if negated {
				delta.RejectedVehicleTypes = appendUnique(delta.RejectedVehicleTypes, model.VehicleType(entry.canonical))
			} else {
				delta.PreferredVehicleTypes = appendUnique(delta.PreferredVehicleTypes, model.VehicleType(entry.canonical))
			}
		case kindFuelType:
			if negated {
				delta.RejectedFuelTypes = appendUnique(delta.RejectedFuelTypes, model.FuelType(entry.canonical))
			} else {
				delta.PreferredFuelTypes = appendUnique(delta.PreferredFuelTypes, model.FuelType(entry.canonical))
			}
		case kindTransmission:
			// Rejecting one of two gearbox kinds is better expressed as
			// preferring the other, but the DTO only models a positive set
			// for transmission, so negated mentions are dropped.
			if !negated {
				delta.Transmission = appendUnique(delta.Transmission, model.TransmissionType(entry.canonical))
			}
		}
		i += n
	}
}

var reFeatureNeg = regexp.MustCompile(`\bwithout\s+([a-z][a-z0-9' -]{2,60})`)
var reFeaturePos = regexp.MustCompile(`\b(?:with|featuring|including|that has|has)\s+([a-z][a-z0-9' -]{2,60})`)

// extractFeatures pulls free-text feature tokens out of "with ..." phrases.
// Negative phrases ("without ...") are consumed first so the positive pass
// cannot see them.
func (e *ParameterExtractor) extractFeatures(delta *model.RecommendationParameters, text *string) {
	applyAll(text, reFeatureNeg, func(sub []string) bool {
		for _, f := range e.splitFeaturePhrase(sub[1]) {
			delta.RejectedFeatures = appendUnique(delta.RejectedFeatures, f)
		}
		return true
	})
	applyAll(text, reFeaturePos, func(sub []string) bool {
		for _, f := range e.splitFeaturePhrase(sub[1]) {
			delta.DesiredFeatures = appendUnique(delta.DesiredFeatures, f)
		}
		return true
	})
}

var featureSplitter = regexp.MustCompile(`\s*(?:,|;|\band\b|\bor\b|\bplus\b|&)\s*`)

var featureBlockTokens = map[string]bool{
	"i": true, "me": true, "my": true, "you": true, "your": true, "we": true,
	"it": true, "that": true, "this": true, "is": true, "budget": true,
	"price": true, "something": true,
}

// splitFeaturePhrase breaks a conjunction-separated phrase into normalized
// feature tokens, dropping anything the vocabulary already claims and
// anything that does not look like an equipment mention.
func (e *ParameterExtractor) splitFeaturePhrase(phrase string) []string {
	var out []string
	for _, part := range featureSplitter.Split(phrase, -1) {
		part = strings.TrimSpace(part)
		for _, art := range []string{"a ", "an ", "the "} {
			part = strings.TrimPrefix(part, art)
		}
		part = strings.TrimSpace(part)
		if part == "" || part == "car" || part == "vehicle" || part == "one" {
			continue
		}
		words := strings.Fields(part)
		if len(words) > 4 {
			continue
		}
		usable := true
		for _, w := range words {
			if featureBlockTokens[w] || isDigits(w) {
				usable = false
				break
			}
		}
		if !usable {
			continue
		}
		if e.containsVocabTerm(words) {
			continue
		}
		out = append(out, strings.Join(words, " "))
		if len(out) == 6 {
			break
		}
	}
	return out
}

func (e *ParameterExtractor) containsVocabTerm(words []string) bool {
	for i := range words {
		if _, n := e.vocab.lookup(words, i); n > 0 {
			return true
		}
	}
	return false
}

// applyAll runs re over *text, passing each hit's submatches to fn. Every hit
// fn accepts is blanked out of the working text.
func applyAll(text *string, re *regexp.Regexp, fn func(sub []string) bool) {
	matches := re.FindAllStringSubmatchIndex(*text, -1)
	if len(matches) == 0 {
		return
	}
	b := []byte(*text)
	for _, m := range matches {
		sub := make([]string, len(m)/2)
		for i := range sub {
			if m[2*i] >= 0 {
				sub[i] = (*text)[m[2*i]:m[2*i+1]]
			}
		}
		if !fn(sub) {
			continue
		}
		for i := m[0]; i < m[1]; i++ {
			b[i] = ' '
		}
	}
	*text = string(b)
}

// parseAmount converts a currency-style number to a value. Commas are
// thousands separators; dots are too when they group digits in threes
// ("30.000"); a trailing k multiplies by 1000.
func parseAmount(raw, k string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if reThousandDots.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	if strings.TrimSpace(k) != "" {
		v *= 1000
	}
	return v, true
}

func atoiSafe(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// tokenize splits on everything that is not a letter, digit, hyphen or
// apostrophe, so "don't" and "plug-in" survive as single tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '\'':
			return false
		}
		return true
	})
}

var negationMarkers = map[string]bool{
	"not": true, "no": true, "without": true, "except": true, "avoid": true,
	"don't": true, "dont": true, "dislike": true, "hate": true,
}

func isNegationMarker(tok string, tokens []string, pos int) bool {
	if negationMarkers[tok] {
		return true
	}
	// "anything but diesel"
	return tok == "but" && pos > 0 && tokens[pos-1] == "anything"
}

var fillerTokens = map[string]bool{
	"a": true, "an": true, "the": true, "any": true, "want": true,
	"like": true, "really": true, "prefer": true, "my": true,
}

func isFillerToken(tok string) bool {
	return fillerTokens[tok]
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func f64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int         { return &v }
