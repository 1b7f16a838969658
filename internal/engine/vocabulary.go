package engine

import (
	"strings"

	"carmatch/backend/internal/model"
)

// termKind identifies which categorical field a vocabulary term belongs to.
type termKind int

const (
	kindMake termKind = iota
	kindVehicleType
	kindFuelType
	kindTransmission
)

// makeSynonyms maps lowercased surface forms to canonical make names.
// Multi-word keys are matched greedily before single-word keys.
var makeSynonyms = map[string]string{
	"toyota":        "Toyota",
	"volkswagen":    "Volkswagen",
	"vw":            "Volkswagen",
	"bmw":           "BMW",
	"mercedes":      "Mercedes-Benz",
	"mercedes-benz": "Mercedes-Benz",
	"mercedes benz": "Mercedes-Benz",
	"audi":          "Audi",
	"ford":          "Ford",
	"opel":          "Opel",
	"honda":         "Honda",
	"nissan":        "Nissan",
	"hyundai":       "Hyundai",
	"kia":           "Kia",
	"mazda":         "Mazda",
	"skoda":         "Skoda",
	"seat":          "SEAT",
	"peugeot":       "Peugeot",
	"renault":       "Renault",
	"citroen":       "Citroen",
	"fiat":          "Fiat",
	"volvo":         "Volvo",
	"tesla":         "Tesla",
	"porsche":       "Porsche",
	"lexus":         "Lexus",
	"jeep":          "Jeep",
	"land rover":    "Land Rover",
	"range rover":   "Land Rover",
	"mini":          "MINI",
	"suzuki":        "Suzuki",
	"subaru":        "Subaru",
	"mitsubishi":    "Mitsubishi",
	"dacia":         "Dacia",
	"alfa romeo":    "Alfa Romeo",
}

// Deliberately absent: the bare word "car" carries no category information
// and must not satisfy the category-hint requirement.
var vehicleTypeSynonyms = map[string]model.VehicleType{
	"suv":            model.VehicleSUV,
	"suvs":           model.VehicleSUV,
	"crossover":      model.VehicleSUV,
	"sedan":          model.VehicleSedan,
	"saloon":         model.VehicleSedan,
	"hatchback":      model.VehicleHatchback,
	"hatch":          model.VehicleHatchback,
	"coupe":          model.VehicleCoupe,
	"convertible":    model.VehicleConvertible,
	"cabriolet":      model.VehicleConvertible,
	"cabrio":         model.VehicleConvertible,
	"wagon":          model.VehicleWagon,
	"estate":         model.VehicleWagon,
	"station wagon":  model.VehicleWagon,
	"van":            model.VehicleVan,
	"pickup":         model.VehiclePickup,
	"pickup truck":   model.VehiclePickup,
	"pick-up":        model.VehiclePickup,
	"truck":          model.VehiclePickup,
	"minivan":        model.VehicleMinivan,
	"people carrier": model.VehicleMinivan,
	"mpv":            model.VehicleMinivan,
}

var fuelTypeSynonyms = map[string]model.FuelType{
	"petrol":         model.FuelPetrol,
	"gasoline":       model.FuelPetrol,
	"gas":            model.FuelPetrol,
	"diesel":         model.FuelDiesel,
	"electric":       model.FuelElectric,
	"ev":             model.FuelElectric,
	"evs":            model.FuelElectric,
	"battery":        model.FuelElectric,
	"hybrid":         model.FuelHybrid,
	"plug-in hybrid": model.FuelPlugInHybrid,
	"plugin hybrid":  model.FuelPlugInHybrid,
	"plug in hybrid": model.FuelPlugInHybrid,
	"phev":           model.FuelPlugInHybrid,
	"lpg":            model.FuelLPG,
	"autogas":        model.FuelLPG,
}

var transmissionSynonyms = map[string]model.TransmissionType{
	"automatic":      model.TransmissionAutomatic,
	"auto":           model.TransmissionAutomatic,
	"manual":         model.TransmissionManual,
	"stick shift":    model.TransmissionManual,
	"semi-automatic": model.TransmissionSemiAutomatic,
	"semi automatic": model.TransmissionSemiAutomatic,
	"semiautomatic":  model.TransmissionSemiAutomatic,
}

// vocabulary indexes all synonym tables by their word count so the matcher
// can try the longest surface forms first.
type vocabulary struct {
	// byLength[n] maps an n-word lowercased phrase to its entry.
	byLength []map[string]vocabEntry
	maxWords int
}

type vocabEntry struct {
	kind      termKind
	canonical string
}

func newVocabulary() *vocabulary {
	v := &vocabulary{maxWords: 3}
	v.byLength = make([]map[string]vocabEntry, v.maxWords+1)
	for i := 1; i <= v.maxWords; i++ {
		v.byLength[i] = make(map[string]vocabEntry)
	}
	add := func(surface string, kind termKind, canonical string) {
		n := len(strings.Fields(surface))
		if n == 0 || n > v.maxWords {
			return
		}
		v.byLength[n][surface] = vocabEntry{kind: kind, canonical: canonical}
	}
	for s, c := range makeSynonyms {
		add(s, kindMake, c)
	}
	for s, c := range vehicleTypeSynonyms {
		add(s, kindVehicleType, string(c))
	}
	for s, c := range fuelTypeSynonyms {
		add(s, kindFuelType, string(c))
	}
	for s, c := range transmissionSynonyms {
		add(s, kindTransmission, string(c))
	}
	return v
}

// lookup returns the entry for the phrase formed by tokens[pos:pos+n], trying
// the longest phrase first. Returns the consumed length, or 0 on no match.
func (v *vocabulary) lookup(tokens []string, pos int) (vocabEntry, int) {
	for n := v.maxWords; n >= 1; n-- {
		if pos+n > len(tokens) {
			continue
		}
		phrase := strings.Join(tokens[pos:pos+n], " ")
		if e, ok := v.byLength[n][phrase]; ok {
			return e, n
		}
	}
	return vocabEntry{}, 0
}
