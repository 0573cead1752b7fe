// internal/diagnosis/vibration.go
package diagnosis

import (
	"fmt"

	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/thresholds"
)

// EvaluateVibration produces the mechanical verdict for one bearing point:
// vibration severity classified on the MAX directional value, temperature
// classified on its own table, and a fault pattern derived from SUM ratios.
//
// Pattern matching only runs once vibration or temperature severity reaches
// warning; below that the label would be cosmetic noise on a healthy point.
func EvaluateVibration(point data.MeasurementPoint, vib data.VibrationReading, temperature float64, spec data.EquipmentSpec) (data.VibrationVerdict, []data.DiagnosticIssue) {
	var severity data.SeverityVerdict
	if point.Pump && spec.Standard == data.StandardAPI610 {
		severity = Classify(vib.Max(), thresholds.API610.Boundaries(), thresholds.API610Zones, "API 610")
	} else {
		group := thresholds.SizeGroupForPower(spec.PowerKW)
		limits, standard := thresholds.Vibration(group, spec.Foundation)
		severity = Classify(vib.Max(), limits.Boundaries(), thresholds.ISOZones, standard)
	}

	tempVerdict := Classify(temperature, thresholds.Temperature.Boundaries(), thresholds.TemperatureZones, "IEC 60034-1")

	verdict := data.VibrationVerdict{
		Point:       point.Label,
		Severity:    severity,
		Temperature: tempVerdict,
	}

	if severity.Level >= data.LevelWarning || tempVerdict.Level >= data.LevelWarning {
		if finding := MatchPattern(vib); finding.Kind != data.FaultNone {
			verdict.Fault = &finding
		}
	}

	var issues []data.DiagnosticIssue
	if severity.Level >= data.LevelWarning {
		category := data.CategoryHighVibration
		description := fmt.Sprintf("%s: vibration %.2f mm/s in %s (limit %.2f mm/s, %s)",
			point.Label, vib.Max(), severity.Zone, severity.Limit, severity.Standard)
		if verdict.Fault != nil {
			category = categoryForFault(verdict.Fault.Kind)
			description += fmt.Sprintf("; pattern suggests %s (%s)", verdict.Fault.Kind, verdict.Fault.Reason)
		}
		issues = append(issues, data.DiagnosticIssue{
			Source:      point.Label + " vibration",
			Description: description,
			Level:       severity.Level,
			Category:    category,
			Immediate:   severity.Terminal,
		})
	}
	if tempVerdict.Level >= data.LevelWarning {
		issues = append(issues, data.DiagnosticIssue{
			Source: point.Label + " temperature",
			Description: fmt.Sprintf("%s: bearing temperature %.1f degC in %s band (limit %.1f degC)",
				point.Label, temperature, tempVerdict.Zone, tempVerdict.Limit),
			Level:     tempVerdict.Level,
			Category:  data.CategoryTemperature,
			Immediate: tempVerdict.Terminal,
		})
	}

	return verdict, issues
}
