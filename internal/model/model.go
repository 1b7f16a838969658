package model

import "time"

// Intent classifies what a single chat turn is trying to do.
type Intent string

const (
	// IntentVehicleSearch marks a turn that states (or restates) search criteria.
	IntentVehicleSearch Intent = "VEHICLE_SEARCH"
	// IntentClarificationAnswer marks a turn answering a pending follow-up question.
	IntentClarificationAnswer Intent = "CLARIFICATION_ANSWER"
	// IntentConfusedFallback marks a turn from which nothing could be recognized.
	IntentConfusedFallback Intent = "CONFUSED_FALLBACK"
)

// FuelType is the closed set of fuel kinds the engine understands.
// Values double as display strings at the API boundary.
type FuelType string

const (
	FuelPetrol       FuelType = "Petrol"
	FuelDiesel       FuelType = "Diesel"
	FuelElectric     FuelType = "Electric"
	FuelHybrid       FuelType = "Hybrid"
	FuelPlugInHybrid FuelType = "Plug-in Hybrid"
	FuelLPG          FuelType = "LPG"
)

// VehicleType is the closed set of body styles the engine understands.
type VehicleType string

const (
	VehicleSUV         VehicleType = "SUV"
	VehicleSedan       VehicleType = "Sedan"
	VehicleHatchback   VehicleType = "Hatchback"
	VehicleCoupe       VehicleType = "Coupe"
	VehicleConvertible VehicleType = "Convertible"
	VehicleWagon       VehicleType = "Wagon"
	VehicleVan         VehicleType = "Van"
	VehiclePickup      VehicleType = "Pickup"
	VehicleMinivan     VehicleType = "Minivan"
)

// TransmissionType is the closed set of gearbox kinds the engine understands.
type TransmissionType string

const (
	TransmissionAutomatic     TransmissionType = "Automatic"
	TransmissionManual        TransmissionType = "Manual"
	TransmissionSemiAutomatic TransmissionType = "Semi-Automatic"
)

// RecommendationParameters is the accumulated, merged search state of a
// conversation. Every range field is optional; nil means "never stated".
// Set fields hold distinct values; a value must never be present in both a
// positive set and its rejected counterpart at the same time.
type RecommendationParameters struct {
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	MinYear       *int     `json:"minYear,omitempty"`
	MaxYear       *int     `json:"maxYear,omitempty"`
	MaxMileage    *int     `json:"maxMileage,omitempty"`
	MinEngineSize *float64 `json:"minEngineSize,omitempty"`
	MaxEngineSize *float64 `json:"maxEngineSize,omitempty"`
	MinHorsePower *int     `json:"minHorsePower,omitempty"`
	MaxHorsePower *int     `json:"maxHorsePower,omitempty"`

	PreferredMakes        []string           `json:"preferredMakes,omitempty"`
	PreferredVehicleTypes []VehicleType      `json:"preferredVehicleTypes,omitempty"`
	PreferredFuelTypes    []FuelType         `json:"preferredFuelTypes,omitempty"`
	DesiredFeatures       []string           `json:"desiredFeatures,omitempty"`
	Transmission          []TransmissionType `json:"transmission,omitempty"`

	RejectedMakes        []string           `json:"rejectedMakes,omitempty"`
	RejectedVehicleTypes []VehicleType      `json:"rejectedVehicleTypes,omitempty"`
	RejectedFuelTypes    []FuelType         `json:"rejectedFuelTypes,omitempty"`
	RejectedFeatures     []string           `json:"rejectedFeatures,omitempty"`

	Intent                 Intent   `json:"intent,omitempty"`
	ClarificationNeeded    bool     `json:"clarificationNeeded"`
	ClarificationNeededFor []string `json:"clarificationNeededFor,omitempty"`
	MatchedCategory        string   `json:"matchedCategory,omitempty"`
}

// HasBudget reports whether either price bound has been stated.
func (p *RecommendationParameters) HasBudget() bool {
	return p.MinPrice != nil || p.MaxPrice != nil
}

// HasCategoryHint reports whether any of the category-defining positive sets
// is populated. Any one of them is enough to run a meaningful query.
func (p *RecommendationParameters) HasCategoryHint() bool {
	return len(p.PreferredVehicleTypes) > 0 ||
		len(p.PreferredMakes) > 0 ||
		len(p.PreferredFuelTypes) > 0
}

// IsEmpty reports whether no criteria at all have been recognized.
func (p *RecommendationParameters) IsEmpty() bool {
	return p.MinPrice == nil && p.MaxPrice == nil &&
		p.MinYear == nil && p.MaxYear == nil &&
		p.MaxMileage == nil &&
		p.MinEngineSize == nil && p.MaxEngineSize == nil &&
		p.MinHorsePower == nil && p.MaxHorsePower == nil &&
		len(p.PreferredMakes) == 0 && len(p.PreferredVehicleTypes) == 0 &&
		len(p.PreferredFuelTypes) == 0 && len(p.DesiredFeatures) == 0 &&
		len(p.Transmission) == 0 &&
		len(p.RejectedMakes) == 0 && len(p.RejectedVehicleTypes) == 0 &&
		len(p.RejectedFuelTypes) == 0 && len(p.RejectedFeatures) == 0
}

// ConversationSession stores the durable state of one conversation: who owns
// it, when it was last touched, and the merged parameter snapshot.
type ConversationSession struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	CreatedAt         time.Time                `json:"createdAt"`
	LastInteractionAt time.Time                `json:"lastInteractionAt"`
	Parameters        RecommendationParameters `json:"parameters"`
	// OriginalUserInput is the un-clarified request text, kept verbatim
	// across a clarification sub-dialogue so the answering turn can be
	// correlated with the question that triggered it.
	OriginalUserInput string `json:"originalUserInput,omitempty"`
}

// ChatTurn is one incoming user message.
type ChatTurn struct {
	ConversationID        string    `json:"conversationId,omitempty"`
	Content               string    `json:"content"`
	Timestamp             time.Time `json:"timestamp"`
	IsClarificationAnswer bool      `json:"isClarificationAnswer,omitempty"`
	IsFollowUp            bool      `json:"isFollowUp,omitempty"`
	OriginalUserInput     string    `json:"originalUserInput,omitempty"`
}

// Vehicle is one inventory record as returned by the catalog collaborator.
type Vehicle struct {
	ID              string           `json:"id"`
	Make            string           `json:"make"`
	Model           string           `json:"model"`
	Year            int              `json:"year"`
	Price           float64          `json:"price"`
	Mileage         int              `json:"mileage"`
	FuelType        FuelType         `json:"fuelType"`
	VehicleType     VehicleType      `json:"vehicleType"`
	Transmission    TransmissionType `json:"transmission"`
	EngineSize      float64          `json:"engineSize"`
	HorsePower      int              `json:"horsePower"`
	Features        []string         `json:"features,omitempty"`
	PrimaryImageURL string           `json:"primaryImageUrl,omitempty"`
	ListedAt        time.Time        `json:"listedAt"`
}

// ChatResponse is the assembled reply for one turn.
type ChatResponse struct {
	Message             string                   `json:"message"`
	Vehicles            []Vehicle                `json:"vehicles,omitempty"`
	Parameters          RecommendationParameters `json:"parameters"`
	ClarificationNeeded bool                     `json:"clarificationNeeded"`
	OriginalUserInput   string                   `json:"originalUserInput,omitempty"`
	ConversationID      string                   `json:"conversationId"`
	MatchedCategory     string                   `json:"matchedCategory,omitempty"`
}

// ChatHistoryRecord is one persisted (user message, assistant message) pair.
// The engine only ever writes these; reading them back is a plain listing.
type ChatHistoryRecord struct {
	ID               string    `json:"id"`
	ConversationID   string    `json:"conversationId"`
	UserMessage      string    `json:"userMessage"`
	AssistantMessage string    `json:"assistantMessage"`
	CreatedAt        time.Time `json:"createdAt"`
}
