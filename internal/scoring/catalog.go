// Package scoring implements the risk and assessment engine: instrument
// scoring, academic stress estimation, mood trend aggregation, composite risk
// fusion, crisis detection, and rule-based recommendations. All functions are
// pure and safe for concurrent use.
package scoring

// Instrument ids known to the catalog.
const (
	InstrumentPHQ9   = "PHQ-9"
	InstrumentGAD7   = "GAD-7"
	InstrumentGHQ12  = "GHQ-12"
	InstrumentDASS21 = "DASS-21"
)

// SeverityBand maps a score threshold to a label. Strict bands match with
// score > threshold, non-strict with score >= threshold. Bands are evaluated
// in descending threshold order; the last band is the catch-all.
type SeverityBand struct {
	Threshold int
	Strict    bool
	Label     string
}

// InstrumentDefinition describes one psychometric questionnaire.
type InstrumentDefinition struct {
	ID            string         `json:"id"`
	QuestionCount int            `json:"questionCount"`
	MaxScore      int            `json:"maxScore"`
	Bands         []SeverityBand `json:"-"`
}

// PHQ-9 and GAD-7 use >= thresholds, GHQ-12 and DASS-21 use strict >. The
// asymmetry matters at band boundaries and matches the published cutoffs.
var catalog = map[string]InstrumentDefinition{
	InstrumentPHQ9: {
		ID:            InstrumentPHQ9,
		QuestionCount: 9,
		MaxScore:      27,
		Bands: []SeverityBand{
			{Threshold: 20, Label: "Severe"},
			{Threshold: 15, Label: "Moderately severe"},
			{Threshold: 10, Label: "Moderate"},
			{Threshold: 5, Label: "Mild"},
			{Threshold: 0, Label: "Minimal"},
		},
	},
	InstrumentGAD7: {
		ID:            InstrumentGAD7,
		QuestionCount: 7,
		MaxScore:      21,
		Bands: []SeverityBand{
			{Threshold: 15, Label: "Severe"},
			{Threshold: 10, Label: "Moderate"},
			{Threshold: 5, Label: "Mild"},
			{Threshold: 0, Label: "Minimal"},
		},
	},
	InstrumentGHQ12: {
		ID:            InstrumentGHQ12,
		QuestionCount: 12,
		MaxScore:      36,
		Bands: []SeverityBand{
			{Threshold: 20, Strict: true, Label: "High distress"},
			{Threshold: 12, Strict: true, Label: "Moderate distress"},
			{Threshold: 0, Label: "Low distress"},
		},
	},
	InstrumentDASS21: {
		ID:            InstrumentDASS21,
		QuestionCount: 21,
		MaxScore:      63,
		Bands: []SeverityBand{
			{Threshold: 60, Strict: true, Label: "Extremely severe"},
			{Threshold: 45, Strict: true, Label: "Severe"},
			{Threshold: 30, Strict: true, Label: "Moderate"},
			{Threshold: 0, Label: "Mild/Normal"},
		},
	},
}

// Instrument looks up an instrument definition by id.
func Instrument(id string) (InstrumentDefinition, error) {
	def, ok := catalog[id]
	if !ok {
		return InstrumentDefinition{}, ErrInstrumentNotFound
	}
	return def, nil
}

// Instruments returns all catalog definitions in a stable order.
func Instruments() []InstrumentDefinition {
	return []InstrumentDefinition{
		catalog[InstrumentPHQ9],
		catalog[InstrumentGAD7],
		catalog[InstrumentGHQ12],
		catalog[InstrumentDASS21],
	}
}

// Classify maps a raw score to the instrument's severity label.
func (d InstrumentDefinition) Classify(score int) string {
	for _, band := range d.Bands {
		if band.Strict {
			if score > band.Threshold {
				return band.Label
			}
		} else if score >= band.Threshold {
			return band.Label
		}
	}
	// Unreachable as long as the last band is a non-strict zero threshold.
	return ""
}
