// internal/diagnosis/report.go
package diagnosis

import (
	"time"

	"github.com/google/uuid"

	"github.com/alkavf71/pump-basic/internal/data"
)

// recommendationOrder fixes the order recommendations appear in, so identical
// inputs always produce identical reports.
var recommendationOrder = []data.Category{
	data.CategoryMisalignment,
	data.CategoryUnbalance,
	data.CategoryLooseness,
	data.CategoryHighVibration,
	data.CategoryBearing,
	data.CategoryTemperature,
	data.CategoryElectrical,
	data.CategoryHydraulic,
}

var recommendations = map[data.Category]string{
	data.CategoryMisalignment:  "Check coupling alignment with dial indicators or a laser kit; inspect for soft foot and coupling element wear.",
	data.CategoryUnbalance:     "Field-balance the rotor; inspect the impeller for fouling, erosion, or lost balance weights.",
	data.CategoryLooseness:     "Check hold-down bolts, bearing caps, and baseplate grout; torque fasteners to specification.",
	data.CategoryHighVibration: "Vibration exceeds the severity limit with no dominant directional pattern; take a spectrum (FFT) measurement to isolate the source.",
	data.CategoryBearing:       "Schedule bearing inspection or replacement; verify lubricant grade, quantity, and contamination.",
	data.CategoryTemperature:   "Check lubrication and cooling; verify the bearing is not over-greased and the load is within rating.",
	data.CategoryElectrical:    "Inspect supply voltage balance, terminal connections, and winding resistance; megger the motor if unbalance persists.",
	data.CategoryHydraulic:     "Verify suction line condition, NPSH margin, and valve positions; check for recirculation or discharge blockage.",
}

// Analyze runs the full rule engine over one input snapshot and aggregates
// the result. It is deterministic apart from the report ID and timestamp:
// evaluators run in train order, issues keep insertion order, and the
// recommendation list follows a fixed category order with one entry per
// detected category. Analyze never mutates its input and holds no state
// between invocations.
func Analyze(req data.AnalysisRequest, limits ElectricalLimits) data.DiagnosticReport {
	report := data.DiagnosticReport{
		ID:          uuid.NewString(),
		EquipmentID: req.EquipmentID,
		GeneratedAt: time.Now().UTC(),
	}

	for _, pr := range req.Points {
		point, ok := data.PointByID(pr.Point)
		if !ok {
			// The parser rejects unknown points; skip defensively if the
			// engine is fed an unparsed request.
			continue
		}
		vibVerdict, vibIssues := EvaluateVibration(point, pr.Vibration, pr.Temperature, req.Spec)
		report.Vibration = append(report.Vibration, vibVerdict)
		report.Issues = append(report.Issues, vibIssues...)

		bearingVerdict, bearingIssues := EvaluateBearing(point, pr.Acceleration)
		report.Bearings = append(report.Bearings, bearingVerdict)
		report.Issues = append(report.Issues, bearingIssues...)
	}

	var elecIssues, hydIssues []data.DiagnosticIssue
	report.Electrical, elecIssues = EvaluateElectrical(req.Electrical, limits)
	report.Issues = append(report.Issues, elecIssues...)
	report.Hydraulic, hydIssues = EvaluateHydraulic(req.Hydraulic)
	report.Issues = append(report.Issues, hydIssues...)

	report.Overall = overallStatus(report.Issues)
	report.Recommendations = recommend(report.Issues)
	return report
}

func overallStatus(issues []data.DiagnosticIssue) data.OverallStatus {
	actionable := false
	for _, issue := range issues {
		if issue.Immediate {
			return data.StatusImmediate
		}
		if issue.Level >= data.LevelWarning {
			actionable = true
		}
	}
	if actionable {
		return data.StatusScheduled
	}
	return data.StatusAllClear
}

func recommend(issues []data.DiagnosticIssue) []data.Recommendation {
	present := make(map[data.Category]bool, len(issues))
	for _, issue := range issues {
		if issue.Level >= data.LevelWarning && issue.Category != "" {
			present[issue.Category] = true
		}
	}
	var out []data.Recommendation
	for _, category := range recommendationOrder {
		if present[category] {
			out = append(out, data.Recommendation{Category: category, Action: recommendations[category]})
		}
	}
	return out
}
