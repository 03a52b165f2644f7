package ui

import (
	"image"
	"testing"

	"deepsea/internal/core"
)

func floatState(value, step, lo, hi float64) *controlState {
	return &controlState{
		control: core.ParameterControl{
			Key: "k", Type: core.ParamTypeFloat, Step: step,
			Min: lo, Max: hi, HasMin: true, HasMax: true,
		},
		floatValue: value,
		hasValue:   true,
	}
}

func TestAdjustedClampsToBounds(t *testing.T) {
	got, ok := adjusted(floatState(0.95, 0.1, 0, 1), 1)
	if !ok || got != 1 {
		t.Fatalf("expected clamp to 1, got %.3f ok=%v", got, ok)
	}
	if _, ok := adjusted(floatState(1, 0.1, 0, 1), 1); ok {
		t.Fatalf("no change at the upper bound should report false")
	}
	if _, ok := adjusted(floatState(0, 0.1, 0, 1), -1); ok {
		t.Fatalf("no change at the lower bound should report false")
	}
	got, ok = adjusted(floatState(0.5, 0, 0, 1), -1)
	if !ok || got != 0.45 {
		t.Fatalf("zero step should fall back to 0.05, got %.3f", got)
	}
}

func TestFormatFloatPrecisionFollowsStep(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.0005, "0.1235"},
		{0.005, "0.123"},
		{0.05, "0.12"},
		{5, "0"},
	}
	for _, tc := range cases {
		got := formatFloat(core.ParameterControl{Step: tc.step}, 0.12345)
		if got != tc.want {
			t.Fatalf("step %v: expected %q, got %q", tc.step, tc.want, got)
		}
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle("reef"); got != "Reef Controls" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := buildTitle(""); got != "Controls" {
		t.Fatalf("unexpected fallback title %q", got)
	}
}

func TestPointInRect(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 19, r) || pointInRect(20, 15, r) {
		t.Fatalf("pointInRect must be half-open")
	}
}
