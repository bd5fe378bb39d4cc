package scoring

// Vocabulary holds the lookup data the matcher uses for fuzzy condition and
// location matching. It is plain data injected into the Scorer so deployments
// and tests can extend or swap it without touching scoring logic.
type Vocabulary struct {
	// MedicalKeywords are organ and disease-class terms. Two condition
	// strings that each contain at least one of these are considered to
	// describe the same medical territory.
	MedicalKeywords []string
	// Synonyms maps a canonical condition term to related terms. A pair
	// matches when one string contains the canonical term and the other
	// contains any of its synonyms.
	Synonyms map[string][]string
	// StateAbbreviations maps lowercase US state names to their postal
	// abbreviations, used for location equivalence.
	StateAbbreviations map[string][]string
}

// DefaultVocabulary returns the built-in matching vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		MedicalKeywords: []string{
			"cancer", "tumor", "carcinoma", "sarcoma", "leukemia", "lymphoma", "melanoma",
			"heart", "cardiac", "cardiovascular", "stroke",
			"kidney", "renal", "dialysis",
			"liver", "hepatic",
			"lung", "pulmonary", "respiratory",
			"brain", "neurological",
			"diabetes", "diabetic", "insulin",
			"transplant", "chemotherapy", "chemo", "radiation",
			"surgery", "amputation", "paralysis",
			"sclerosis", "fibrosis", "dystrophy",
			"autism", "epilepsy", "alzheimer", "dementia", "parkinson",
			"sepsis", "covid", "pneumonia",
		},
		Synonyms: map[string][]string{
			"cancer":       {"tumor", "carcinoma", "sarcoma", "leukemia", "lymphoma", "melanoma", "oncology"},
			"mi":           {"myocardial infarction", "heart attack"},
			"heart attack": {"myocardial infarction", "cardiac arrest"},
			"stroke":       {"cerebrovascular accident", "cva", "brain bleed"},
			"diabetes":     {"diabetic", "type 1", "type 2", "t1d", "t2d"},
			"kidney":       {"renal", "dialysis", "nephropathy"},
			"als":          {"amyotrophic lateral sclerosis", "lou gehrig"},
			"ms":           {"multiple sclerosis"},
			"chd":          {"congenital heart defect", "congenital heart disease"},
		},
		StateAbbreviations: stateAbbreviations,
	}
}

// stateAbbreviations covers all 50 US states plus DC.
var stateAbbreviations = map[string][]string{
	"alabama":             {"AL"},
	"alaska":              {"AK"},
	"arizona":             {"AZ"},
	"arkansas":            {"AR"},
	"california":          {"CA"},
	"colorado":            {"CO"},
	"connecticut":         {"CT"},
	"delaware":            {"DE"},
	"florida":             {"FL"},
	"georgia":             {"GA"},
	"hawaii":              {"HI"},
	"idaho":               {"ID"},
	"illinois":            {"IL"},
	"indiana":             {"IN"},
	"iowa":                {"IA"},
	"kansas":              {"KS"},
	"kentucky":            {"KY"},
	"louisiana":           {"LA"},
	"maine":               {"ME"},
	"maryland":            {"MD"},
	"massachusetts":       {"MA"},
	"michigan":            {"MI"},
	"minnesota":           {"MN"},
	"mississippi":         {"MS"},
	"missouri":            {"MO"},
	"montana":             {"MT"},
	"nebraska":            {"NE"},
	"nevada":              {"NV"},
	"new hampshire":       {"NH"},
	"new jersey":          {"NJ"},
	"new mexico":          {"NM"},
	"new york":            {"NY"},
	"north carolina":      {"NC"},
	"north dakota":        {"ND"},
	"ohio":                {"OH"},
	"oklahoma":            {"OK"},
	"oregon":              {"OR"},
	"pennsylvania":        {"PA"},
	"rhode island":        {"RI"},
	"south carolina":      {"SC"},
	"south dakota":        {"SD"},
	"tennessee":           {"TN"},
	"texas":               {"TX"},
	"utah":                {"UT"},
	"vermont":             {"VT"},
	"virginia":            {"VA"},
	"washington":          {"WA"},
	"west virginia":       {"WV"},
	"wisconsin":           {"WI"},
	"wyoming":             {"WY"},
	"district of columbia": {"DC"},
}
