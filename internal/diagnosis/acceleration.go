// internal/diagnosis/acceleration.go
package diagnosis

import (
	"fmt"

	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/thresholds"
)

// EvaluateBearing classifies the acceleration-band envelope for one bearing.
// Two independent escalation paths exist: the summed band total against the
// envelope table, and the early-fault triggers on the 5-16 kHz band (ratio of
// the total above 0.4, or absolute value above 3.0 g). Either path alone is
// enough to raise an issue; high-frequency energy shows up well before the
// total does on a spalling bearing.
func EvaluateBearing(point data.MeasurementPoint, acc data.AccelerationReading) (data.BearingVerdict, []data.DiagnosticIssue) {
	total := acc.Total()
	severity := Classify(total, thresholds.Acceleration.Boundaries(), thresholds.AccelerationZones, "acceleration envelope")

	verdict := data.BearingVerdict{
		Point:    point.Label,
		Severity: severity,
	}

	if total > 0 {
		ratio := acc.High / total
		switch {
		case ratio > thresholds.HighBandRatio:
			verdict.EarlyFault = true
			verdict.Detail = fmt.Sprintf("high band %.2f g is %.0f%% of total %.2f g", acc.High, ratio*100, total)
		case acc.High > thresholds.HighBandAbs:
			verdict.EarlyFault = true
			verdict.Detail = fmt.Sprintf("high band %.2f g exceeds the %.1f g floor", acc.High, thresholds.HighBandAbs)
		}
	}

	var issues []data.DiagnosticIssue
	if severity.Level >= data.LevelWarning {
		issues = append(issues, data.DiagnosticIssue{
			Source: point.Label + " bearing",
			Description: fmt.Sprintf("%s: acceleration total %.2f g in %s band (limit %.2f g)",
				point.Label, total, severity.Zone, severity.Limit),
			Level:     severity.Level,
			Category:  data.CategoryBearing,
			Immediate: severity.Terminal, // severe bearing damage tier
		})
	}
	if verdict.EarlyFault {
		issues = append(issues, data.DiagnosticIssue{
			Source:      point.Label + " bearing",
			Description: fmt.Sprintf("%s: early bearing fault, %s", point.Label, verdict.Detail),
			Level:       data.LevelWarning,
			Category:    data.CategoryBearing,
		})
	}

	return verdict, issues
}
