package model

// AIPotential grades how much an application could benefit from AI.
type AIPotential string

const (
	AIPotentialLow      AIPotential = "low"
	AIPotentialMedium   AIPotential = "medium"
	AIPotentialHigh     AIPotential = "high"
	AIPotentialVeryHigh AIPotential = "veryHigh"
)

// Valid reports whether p is one of the enumerated potential values.
func (p AIPotential) Valid() bool {
	switch p {
	case AIPotentialLow, AIPotentialMedium, AIPotentialHigh, AIPotentialVeryHigh:
		return true
	}
	return false
}

// AIRisk grades the regulatory risk profile of an application.
type AIRisk string

const (
	AIRiskMinimal      AIRisk = "minimal"
	AIRiskLimited      AIRisk = "limited"
	AIRiskHigh         AIRisk = "high"
	AIRiskUnacceptable AIRisk = "unacceptable"
)

// Valid reports whether r is one of the enumerated risk values.
func (r AIRisk) Valid() bool {
	switch r {
	case AIRiskMinimal, AIRiskLimited, AIRiskHigh, AIRiskUnacceptable:
		return true
	}
	return false
}

// AIUsage describes whether and how an application uses AI today.
type AIUsage string

const (
	AIUsageUnknown     AIUsage = "unknown"
	AIUsageNoAIUsage   AIUsage = "noAiUsage"
	AIUsageAIAvailable AIUsage = "aiAvailable"
	AIUsageAIEnabled   AIUsage = "aiEnabled"
)

// Valid reports whether u is one of the enumerated usage values.
func (u AIUsage) Valid() bool {
	switch u {
	case AIUsageUnknown, AIUsageNoAIUsage, AIUsageAIAvailable, AIUsageAIEnabled:
		return true
	}
	return false
}

// AIType names the dominant AI technology behind an application.
type AIType string

const (
	AITypeNeuralNet       AIType = "neuralNet"
	AITypeLLM             AIType = "llm"
	AITypeMachineLearning AIType = "machineLearning"
	AITypeOther           AIType = "Other"
)

// Valid reports whether t is one of the enumerated type values.
func (t AIType) Valid() bool {
	switch t {
	case AITypeNeuralNet, AITypeLLM, AITypeMachineLearning, AITypeOther:
		return true
	}
	return false
}

// DirectoryRow is one application entry from the directory sheet.
//
// Names are not guaranteed unique (duplicates are an intentional artifact of
// the upstream data), descriptions may be empty, and OfficialURL may be empty,
// malformed, or the literal sentinel "N/A". All of those are tolerated; only
// the classification fields, when present, are constrained to their enums.
type DirectoryRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OfficialURL string `json:"official_url"`
	Vendor      string `json:"vendor"`

	AIPotential         AIPotential `json:"ai_potential,omitempty"`
	AIRisk              AIRisk      `json:"ai_risk,omitempty"`
	AIUsage             AIUsage     `json:"ai_usage,omitempty"`
	AIType              AIType      `json:"ai_type,omitempty"`
	TaxonomyDescription string      `json:"taxonomy_description,omitempty"`
}

// NoURL reports whether the row carries no usable URL (empty or the "N/A"
// sentinel used throughout the source data).
func (r DirectoryRow) NoURL() bool {
	u := trimUpper(r.OfficialURL)
	return u == "" || u == "N/A"
}
