package scoring

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestScore_SumsAnswers(t *testing.T) {
	answers := []int{1, 2, 3, 0, 1, 2, 3, 0, 1}
	resp, err := Score("s1", InstrumentPHQ9, answers, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != 13 {
		t.Errorf("expected score 13, got %d", resp.Score)
	}
	if resp.Severity != "Moderate" {
		t.Errorf("expected Moderate, got %s", resp.Severity)
	}
	if resp.InstrumentID != InstrumentPHQ9 {
		t.Errorf("expected instrument %s, got %s", InstrumentPHQ9, resp.InstrumentID)
	}
}

func TestScore_BoundsProperty(t *testing.T) {
	for _, def := range Instruments() {
		zeros := make([]int, def.QuestionCount)
		resp, err := Score("s1", def.ID, zeros, testNow)
		if err != nil {
			t.Fatalf("%s zeros: %v", def.ID, err)
		}
		if resp.Score != 0 {
			t.Errorf("%s: expected 0, got %d", def.ID, resp.Score)
		}

		threes := make([]int, def.QuestionCount)
		for i := range threes {
			threes[i] = 3
		}
		resp, err = Score("s1", def.ID, threes, testNow)
		if err != nil {
			t.Fatalf("%s threes: %v", def.ID, err)
		}
		if resp.Score != def.MaxScore {
			t.Errorf("%s: expected max %d, got %d", def.ID, def.MaxScore, resp.Score)
		}
	}
}

func TestScore_UnknownInstrument(t *testing.T) {
	_, err := Score("s1", "MBTI", []int{1}, testNow)
	if !errors.Is(err, ErrInstrumentNotFound) {
		t.Errorf("expected ErrInstrumentNotFound, got %v", err)
	}
}

func TestScore_AnswerCountMismatch(t *testing.T) {
	_, err := Score("s1", InstrumentGAD7, []int{1, 2, 3}, testNow)
	if !IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestScore_AnswerOutOfRange(t *testing.T) {
	answers := []int{0, 0, 0, 4, 0, 0, 0}
	if _, err := Score("s1", InstrumentGAD7, answers, testNow); !IsValidation(err) {
		t.Errorf("expected ValidationError for answer 4, got %v", err)
	}

	answers[3] = -1
	if _, err := Score("s1", InstrumentGAD7, answers, testNow); !IsValidation(err) {
		t.Errorf("expected ValidationError for answer -1, got %v", err)
	}
}

func TestScore_Idempotent(t *testing.T) {
	answers := []int{3, 3, 3, 2, 2, 2, 1}
	a, err := Score("s1", InstrumentGAD7, answers, testNow)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Score("s1", InstrumentGAD7, answers, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != b.Score || a.Severity != b.Severity {
		t.Errorf("same input produced different results: %+v vs %+v", a, b)
	}
}

func TestBadgeThreshold(t *testing.T) {
	cases := map[string]int{
		InstrumentPHQ9:   21, // floor(27*0.8)
		InstrumentGAD7:   16,
		InstrumentGHQ12:  28,
		InstrumentDASS21: 50,
	}
	for id, want := range cases {
		def, err := Instrument(id)
		if err != nil {
			t.Fatal(err)
		}
		if got := BadgeThreshold(def); got != want {
			t.Errorf("%s: expected threshold %d, got %d", id, want, got)
		}
	}
}
