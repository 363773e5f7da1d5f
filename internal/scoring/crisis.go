package scoring

import (
	"strings"

	"mindcare/internal/model"
)

// crisisLexicon is matched as case-insensitive substrings, without word
// boundaries.
var crisisLexicon = []string{
	"suicide",
	"kill myself",
	"end it all",
	"no point living",
	"want to die",
	"hurt myself",
}

// DetectCrisis scans free text for crisis indicators. On a match the caller
// must bypass normal reply generation and trigger the crisis alert channel.
func DetectCrisis(text string) model.CrisisDetectionResult {
	lowered := strings.ToLower(text)

	var matched []string
	for _, keyword := range crisisLexicon {
		if strings.Contains(lowered, keyword) {
			matched = append(matched, keyword)
		}
	}

	return model.CrisisDetectionResult{
		Matched:         len(matched) > 0,
		MatchedKeywords: matched,
	}
}
