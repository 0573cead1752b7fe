package diagnosis

import (
	"testing"

	"github.com/alkavf71/pump-basic/internal/data"
)

func TestMatchPattern_ZeroSignal(t *testing.T) {
	finding := MatchPattern(data.VibrationReading{})
	if finding.Kind != data.FaultNone {
		t.Errorf("expected no fault for zero signal, got %s", finding.Kind)
	}
}

func TestMatchPattern_Misalignment(t *testing.T) {
	// sum = 5.0, axial ratio = 0.6
	finding := MatchPattern(data.VibrationReading{Horizontal: 1.0, Vertical: 1.0, Axial: 3.0})
	if finding.Kind != data.FaultMisalignment {
		t.Fatalf("expected Misalignment, got %q (%s)", finding.Kind, finding.Reason)
	}
	if finding.Reason == "" {
		t.Error("expected reason to carry the triggering numbers")
	}
}

func TestMatchPattern_MisalignmentByDominance(t *testing.T) {
	// Axial ratio is only 0.34, but axial dominates both radial directions
	// and clears the 2.0 mm/s floor.
	finding := MatchPattern(data.VibrationReading{Horizontal: 2.4, Vertical: 2.4, Axial: 2.5})
	if finding.Kind != data.FaultMisalignment {
		t.Errorf("expected Misalignment via dominance rule, got %q", finding.Kind)
	}
}

func TestMatchPattern_Unbalance(t *testing.T) {
	// sum = 6.7, axial ratio ~0.075, vertical ratio ~0.48
	finding := MatchPattern(data.VibrationReading{Horizontal: 3.0, Vertical: 3.2, Axial: 0.5})
	if finding.Kind != data.FaultUnbalance {
		t.Errorf("expected Unbalance, got %q (%s)", finding.Kind, finding.Reason)
	}
}

func TestMatchPattern_LoosenessSupersedesUnbalance(t *testing.T) {
	// Both the unbalance and the looseness conditions hold; looseness wins.
	finding := MatchPattern(data.VibrationReading{Horizontal: 1.0, Vertical: 2.5, Axial: 0.5})
	if finding.Kind != data.FaultLooseness {
		t.Errorf("expected MechanicalLooseness to supersede Unbalance, got %q", finding.Kind)
	}
}

func TestMatchPattern_LoosenessWithoutUnbalance(t *testing.T) {
	// Axial share is above the unbalance cap, so only looseness can match.
	finding := MatchPattern(data.VibrationReading{Horizontal: 1.0, Vertical: 2.5, Axial: 1.6})
	if finding.Kind != data.FaultLooseness {
		t.Errorf("expected MechanicalLooseness, got %q", finding.Kind)
	}
}

func TestMatchPattern_NoPattern(t *testing.T) {
	// Evenly spread signal matches nothing.
	finding := MatchPattern(data.VibrationReading{Horizontal: 1.0, Vertical: 1.0, Axial: 1.0})
	if finding.Kind != data.FaultNone {
		t.Errorf("expected no fault for an even spread, got %q", finding.Kind)
	}
}
