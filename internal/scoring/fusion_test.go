package scoring

import (
	"math"
	"testing"

	"mindcare/internal/model"
)

func TestFuseRisk_NoSignalIsLow(t *testing.T) {
	// No assessment on file, best possible mood.
	res := FuseRisk("s1", 0, 27, 3.0, testNow)
	if res.Score != 0 {
		t.Errorf("expected score 0, got %f", res.Score)
	}
	if res.Level != model.RiskLow {
		t.Errorf("expected Low, got %s", res.Level)
	}
}

func TestFuseRisk_MaxSignalIsHigh(t *testing.T) {
	res := FuseRisk("s1", 27, 27, 0.0, testNow)
	if math.Abs(res.Score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %f", res.Score)
	}
	if res.Level != model.RiskHigh {
		t.Errorf("expected High, got %s", res.Level)
	}
}

func TestFuseRisk_Weighting(t *testing.T) {
	// PHQ-9 18/27 with neutral mood: 0.75*(2/3) + 0.25*(1/3).
	res := FuseRisk("s1", 18, 27, 2.0, testNow)
	want := 0.75*(18.0/27.0) + 0.25*((3.0-2.0)/3.0)
	if math.Abs(res.Score-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, res.Score)
	}
	if res.Level != model.RiskMedium {
		t.Errorf("expected Medium, got %s", res.Level)
	}
}

func TestFuseRisk_ZeroMaxMeansNoInstrumentSignal(t *testing.T) {
	res := FuseRisk("s1", 10, 0, 2.0, testNow)
	want := 0.25 * ((3.0 - 2.0) / 3.0)
	if math.Abs(res.Score-want) > 1e-9 {
		t.Errorf("expected mood-only score %f, got %f", want, res.Score)
	}
}

func TestLevelForScore_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0.0, model.RiskLow},
		{0.39, model.RiskLow},
		{0.4, model.RiskMedium},
		{0.69, model.RiskMedium},
		{0.7, model.RiskHigh},
		{1.0, model.RiskHigh},
	}
	for _, c := range cases {
		if got := LevelForScore(c.score); got != c.want {
			t.Errorf("score %f: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestFuseRisk_Idempotent(t *testing.T) {
	a := FuseRisk("s1", 12, 27, 1.5, testNow)
	b := FuseRisk("s1", 12, 27, 1.5, testNow)
	if a.Score != b.Score || a.Level != b.Level {
		t.Errorf("same input produced different results: %+v vs %+v", a, b)
	}
}
