// internal/diagnosis/electrical.go
package diagnosis

import (
	"fmt"
	"math"

	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/thresholds"
)

// ElectricalLimits carries the configurable unbalance percentages. The
// defaults follow the IEC/NEMA convention of holding voltage unbalance an
// order of magnitude tighter than current unbalance.
type ElectricalLimits struct {
	VoltageUnbalancePct      float64
	CurrentUnbalanceMinorPct float64
	CurrentUnbalanceMajorPct float64
}

// DefaultElectricalLimits returns the published limit set.
func DefaultElectricalLimits() ElectricalLimits {
	return ElectricalLimits{
		VoltageUnbalancePct:      thresholds.VoltageUnbalancePct,
		CurrentUnbalanceMinorPct: thresholds.CurrentUnbalanceMinorPct,
		CurrentUnbalanceMajorPct: thresholds.CurrentUnbalanceMajorPct,
	}
}

// EvaluateElectrical checks the three-phase snapshot against supply and load
// rules. Every applicable rule is evaluated and accumulated; one finding never
// masks another. Under-voltage is judged on the phase AVERAGE against 90% of
// rated - a single sagging phase trips the unbalance rule instead. Zero
// triplets short-circuit to "no data" rather than dividing.
func EvaluateElectrical(r data.ElectricalReading, limits ElectricalLimits) (data.ElectricalStatus, []data.DiagnosticIssue) {
	status := data.ElectricalStatus{Healthy: true}
	var issues []data.DiagnosticIssue

	flag := func(description string, level data.SeverityLevel) {
		status.Healthy = false
		status.Findings = append(status.Findings, description)
		issues = append(issues, data.DiagnosticIssue{
			Source:      "electrical",
			Description: description,
			Level:       level,
			Category:    data.CategoryElectrical,
		})
	}

	vAvg, vDev := tripletStats(r.VoltageR, r.VoltageS, r.VoltageT)
	if vAvg > 0 {
		if r.RatedVoltage > 0 && vAvg < thresholds.UnderVoltageRatio*r.RatedVoltage {
			flag(fmt.Sprintf("under-voltage: average %.1f V is below %.0f%% of rated %.0f V",
				vAvg, thresholds.UnderVoltageRatio*100, r.RatedVoltage), data.LevelWarning)
		}
		status.VoltageUnbalancePct = vDev / vAvg * 100
		if status.VoltageUnbalancePct > limits.VoltageUnbalancePct {
			flag(fmt.Sprintf("voltage unbalance %.1f%% exceeds the %.1f%% limit (max deviation %.1f V from average %.1f V)",
				status.VoltageUnbalancePct, limits.VoltageUnbalancePct, vDev, vAvg), data.LevelWarning)
		}
	}

	cAvg, cDev := tripletStats(r.CurrentR, r.CurrentS, r.CurrentT)
	if cAvg > 0 {
		status.CurrentUnbalancePct = cDev / cAvg * 100
		switch {
		case status.CurrentUnbalancePct >= limits.CurrentUnbalanceMajorPct:
			flag(fmt.Sprintf("current unbalance %.1f%% exceeds the %.0f%% major limit; check terminals, supply, and rotor bars",
				status.CurrentUnbalancePct, limits.CurrentUnbalanceMajorPct), data.LevelCritical)
		case status.CurrentUnbalancePct >= limits.CurrentUnbalanceMinorPct:
			flag(fmt.Sprintf("current unbalance %.1f%% exceeds the %.0f%% minor limit; monitor",
				status.CurrentUnbalancePct, limits.CurrentUnbalanceMinorPct), data.LevelWarning)
		}

		if r.FullLoadAmps > 0 {
			status.LoadPercent = cAvg / r.FullLoadAmps * 100
			switch {
			case status.LoadPercent > thresholds.OverLoadPct:
				flag(fmt.Sprintf("overload: %.0f%% of FLA (%.1f A average against %.1f A rated)",
					status.LoadPercent, cAvg, r.FullLoadAmps), data.LevelCritical)
			case status.LoadPercent < thresholds.UnderLoadPct:
				flag(fmt.Sprintf("under-loading: %.0f%% of FLA, pump may be running off its curve",
					status.LoadPercent), data.LevelWarning)
			}
		}
	}

	return status, issues
}

// tripletStats returns the average and the maximum absolute deviation from
// the average across one three-phase triplet.
func tripletStats(a, b, c float64) (avg, maxDev float64) {
	avg = (a + b + c) / 3
	for _, v := range [3]float64{a, b, c} {
		if dev := math.Abs(v - avg); dev > maxDev {
			maxDev = dev
		}
	}
	return avg, maxDev
}
