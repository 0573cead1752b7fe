// internal/diagnosis/faults.go
package diagnosis

import (
	"fmt"

	"github.com/alkavf71/pump-basic/internal/data"
)

// Pattern-matching constants. These shape ratios of the directional
// components against their SUM; severity classification uses the MAX and is
// handled separately. Keeping that separation is the load-bearing invariant
// of the vibration rules.
const (
	misalignAxialRatio = 0.5
	misalignAxialFloor = 2.0 // mm/s, absolute axial floor for the dominance rule
	unbalanceAxialCap  = 0.3
	unbalanceDirRatio  = 0.35
	loosenessGain      = 1.5 // vertical must exceed this multiple of horizontal
	loosenessFloor     = 2.0 // mm/s, absolute vertical floor
)

// MatchPattern returns at most one dominant fault pattern for a directional
// velocity triplet. Precedence:
//
//  1. Misalignment: axial share of the sum above 0.5, or axial dominant over
//     both radial directions and above the absolute floor. Short-circuits.
//  2. Unbalance: low axial share with a dominant radial direction.
//  3. Mechanical looseness: vertical well above horizontal and above the
//     absolute floor. A looseness match supersedes a simultaneous unbalance
//     match.
//
// A zero sum means there is no signal to classify and yields no fault.
func MatchPattern(r data.VibrationReading) data.FaultFinding {
	sum := r.Sum()
	if sum <= 0 {
		return data.FaultFinding{}
	}

	axialRatio := r.Axial / sum
	vertRatio := r.Vertical / sum
	horizRatio := r.Horizontal / sum

	if axialRatio > misalignAxialRatio ||
		(r.Axial > r.Horizontal && r.Axial > r.Vertical && r.Axial > misalignAxialFloor) {
		return data.FaultFinding{
			Kind: data.FaultMisalignment,
			Reason: fmt.Sprintf("axial %.2f mm/s carries %.0f%% of the directional sum %.2f mm/s",
				r.Axial, axialRatio*100, sum),
		}
	}

	var finding data.FaultFinding
	if axialRatio < unbalanceAxialCap && (vertRatio > unbalanceDirRatio || horizRatio > unbalanceDirRatio) {
		dominant, share := "vertical", vertRatio
		if horizRatio > vertRatio {
			dominant, share = "horizontal", horizRatio
		}
		finding = data.FaultFinding{
			Kind: data.FaultUnbalance,
			Reason: fmt.Sprintf("%s direction carries %.0f%% of the sum with axial at only %.0f%%",
				dominant, share*100, axialRatio*100),
		}
	}

	// Looseness takes priority over a simultaneous unbalance match.
	if r.Vertical > loosenessGain*r.Horizontal && r.Vertical > loosenessFloor {
		finding = data.FaultFinding{
			Kind: data.FaultLooseness,
			Reason: fmt.Sprintf("vertical %.2f mm/s exceeds %.1fx horizontal %.2f mm/s",
				r.Vertical, loosenessGain, r.Horizontal),
		}
	}

	return finding
}

// categoryForFault maps a fault pattern onto its recommendation category.
// An empty kind means high vibration with no recognizable pattern.
func categoryForFault(kind data.FaultKind) data.Category {
	switch kind {
	case data.FaultMisalignment:
		return data.CategoryMisalignment
	case data.FaultUnbalance:
		return data.CategoryUnbalance
	case data.FaultLooseness:
		return data.CategoryLooseness
	default:
		return data.CategoryHighVibration
	}
}
