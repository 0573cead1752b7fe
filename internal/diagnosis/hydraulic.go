// internal/diagnosis/hydraulic.go
package diagnosis

import (
	"fmt"
	"math"

	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/thresholds"
)

// EvaluateHydraulic checks the process-side snapshot. Rules are independent
// and accumulate: a critically low suction pressure fires on its own even
// when the cavitation rule also matches. Flow/head and the RPM pair are
// optional inputs; their rules only run when both operands are supplied.
func EvaluateHydraulic(r data.HydraulicReading) (data.HydraulicStatus, []data.DiagnosticIssue) {
	differential := r.DischargePressure - r.SuctionPressure
	status := data.HydraulicStatus{Differential: differential}

	if r.SuctionPressure == 0 && r.DischargePressure == 0 {
		status.Status = "Pump stopped / no flow data"
		return status, nil
	}

	var issues []data.DiagnosticIssue
	flag := func(description string, level data.SeverityLevel, immediate bool) {
		status.Findings = append(status.Findings, description)
		issues = append(issues, data.DiagnosticIssue{
			Source:      "hydraulic",
			Description: description,
			Level:       level,
			Category:    data.CategoryHydraulic,
			Immediate:   immediate,
		})
	}

	if r.SuctionPressure < thresholds.CriticalSuction {
		flag(fmt.Sprintf("critical suction pressure %.2f bar (below %.2f bar), NPSH margin lost",
			r.SuctionPressure, thresholds.CriticalSuction), data.LevelCritical, true)
	}
	if r.SuctionPressure < thresholds.CavitationSuction && r.DischargePressure > thresholds.CavitationDischarge {
		flag(fmt.Sprintf("risk of cavitation: suction %.2f bar against discharge %.2f bar",
			r.SuctionPressure, r.DischargePressure), data.LevelWarning, false)
	}
	if differential < thresholds.MinDifferential && r.DischargePressure > 0 {
		flag(fmt.Sprintf("low differential pressure %.2f bar, possible blockage or recirculation",
			differential), data.LevelWarning, false)
	}

	if r.FlowRate > 0 && r.Head > 0 {
		expected := r.Head * thresholds.HeadToBar
		if expected > 0 {
			ratio := differential / expected
			if ratio < thresholds.BEPRatio {
				flag(fmt.Sprintf("operating off best efficiency point: differential %.2f bar is %.0f%% of the %.2f bar head equivalent",
					differential, ratio*100, expected), data.LevelWarning, false)
			}
		}
	}

	if r.RatedRPM > 0 && r.ActualRPM > 0 {
		deviation := math.Abs(r.ActualRPM-r.RatedRPM) / r.RatedRPM * 100
		if deviation > thresholds.RPMDeviationPct {
			flag(fmt.Sprintf("speed deviation %.1f%%: running at %.0f rpm against %.0f rpm rated",
				deviation, r.ActualRPM, r.RatedRPM), data.LevelWarning, false)
		}
	}

	if len(status.Findings) == 0 {
		status.Status = fmt.Sprintf("Normal operation (differential %.2f bar)", differential)
	} else {
		status.Status = status.Findings[0]
	}
	return status, issues
}
