package catalog

// Medicine is a single OTC candidate from the catalog. Entries are loaded
// once and never mutated; lookups hand out copies.
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	MaxDaily string `json:"max_daily"`
	Source   string `json:"source"`
	Note     string `json:"note,omitempty"`
}

// Tier selects the catalog shelf by reported severity.
type Tier string

const (
	TierMild     Tier = "mild"
	TierModerate Tier = "moderate"
)

// AgeGroup selects pediatric or adult entries.
type AgeGroup string

const (
	AgeChild AgeGroup = "child"
	AgeAdult AgeGroup = "adult"
)

// Canonical symptom categories. The order of categoryOrder is the stable
// presentation order used everywhere a category list is surfaced.
const (
	CategoryFever      = "fever"
	CategoryHeadache   = "headache"
	CategoryCoughDry   = "cough_dry"
	CategoryCoughWet   = "cough_wet"
	CategorySoreThroat = "sore_throat"
	CategoryCold       = "cold"
	CategoryBodyPain   = "body_pain"
	CategoryDiarrhea   = "diarrhea"
	CategoryAcidity    = "acidity"
	CategoryAllergy    = "allergy"
)

var categoryOrder = []string{
	CategoryFever,
	CategoryHeadache,
	CategoryCoughDry,
	CategoryCoughWet,
	CategorySoreThroat,
	CategoryCold,
	CategoryBodyPain,
	CategoryDiarrhea,
	CategoryAcidity,
	CategoryAllergy,
}

// IsCanonical reports whether s names one of the canonical categories.
func IsCanonical(s string) bool {
	_, ok := medicineTable[s]
	return ok
}

// TierFor maps a 0-10 severity score to a catalog tier. Severity 7 and above
// never reaches the catalog (the safety gate withholds recommendations), so
// moderate is the highest shelf.
func TierFor(severity int) Tier {
	if severity <= 3 {
		return TierMild
	}
	return TierModerate
}

// AgeGroupFor maps age in years to a catalog age group.
func AgeGroupFor(years int) AgeGroup {
	if years < 18 {
		return AgeChild
	}
	return AgeAdult
}
