package diagnosis

import (
	"testing"

	"github.com/alkavf71/pump-basic/internal/data"
)

func mediumRigidSpec() data.EquipmentSpec {
	return data.EquipmentSpec{
		PowerKW:    55,
		RatedRPM:   2950,
		Coupling:   data.CouplingFlexible,
		Foundation: data.FoundationRigid,
		Standard:   data.StandardISO10816,
	}
}

func mustPoint(t *testing.T, id string) data.MeasurementPoint {
	t.Helper()
	point, ok := data.PointByID(id)
	if !ok {
		t.Fatalf("unknown point %q", id)
	}
	return point
}

func TestEvaluateVibration_SeverityUsesMaxNotSum(t *testing.T) {
	// Max is 2.0 mm/s (Zone B for a medium/rigid machine); the directional
	// sum of 4.0 would land in Zone C. The verdict must follow the max.
	verdict, _ := EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 2.0, Vertical: 2.0, Axial: 0}, 55, mediumRigidSpec())

	if verdict.Severity.Zone != "Zone B" {
		t.Errorf("expected Zone B from max 2.0 mm/s, got %s", verdict.Severity.Zone)
	}
	if verdict.Severity.Level != data.LevelWarning {
		t.Errorf("expected warning, got %s", verdict.Severity.Level)
	}
}

func TestEvaluateVibration_PumpPointUsesAPI610WhenSelected(t *testing.T) {
	spec := mediumRigidSpec()
	spec.Standard = data.StandardAPI610

	verdict, _ := EvaluateVibration(mustPoint(t, "pump_de"),
		data.VibrationReading{Horizontal: 3.5, Vertical: 1.0, Axial: 0.5}, 55, spec)
	if verdict.Severity.Standard != "API 610" {
		t.Errorf("expected API 610 table for a pump bearing, got %s", verdict.Severity.Standard)
	}
	if verdict.Severity.Zone != "Alert" {
		t.Errorf("expected Alert at 3.5 mm/s, got %s", verdict.Severity.Zone)
	}

	// Motor bearings stay on the ISO table even under API 610.
	verdict, _ = EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 3.5, Vertical: 1.0, Axial: 0.5}, 55, spec)
	if verdict.Severity.Standard != "ISO 10816-3" {
		t.Errorf("expected ISO table for a motor bearing, got %s", verdict.Severity.Standard)
	}
}

func TestEvaluateVibration_NoFaultLabelOnHealthyPoint(t *testing.T) {
	// The ratios alone would match unbalance, but severity and temperature
	// are both normal, so no pattern is attached.
	verdict, issues := EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 0.5, Vertical: 0.2, Axial: 0.1}, 55, mediumRigidSpec())

	if verdict.Fault != nil {
		t.Errorf("expected no fault label on a healthy point, got %s", verdict.Fault.Kind)
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %d", len(issues))
	}
}

func TestEvaluateVibration_FaultCategoryOnIssue(t *testing.T) {
	verdict, issues := EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 3.0, Vertical: 3.2, Axial: 0.5}, 55, mediumRigidSpec())

	if verdict.Fault == nil || verdict.Fault.Kind != data.FaultUnbalance {
		t.Fatalf("expected Unbalance pattern, got %+v", verdict.Fault)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Category != data.CategoryUnbalance {
		t.Errorf("expected unbalance category, got %s", issues[0].Category)
	}
	if issues[0].Immediate {
		t.Error("Zone C must not be immediate tier")
	}
}

func TestEvaluateVibration_ZoneDIsImmediate(t *testing.T) {
	_, issues := EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 8.0, Vertical: 1.0, Axial: 0.5}, 55, mediumRigidSpec())

	if len(issues) == 0 {
		t.Fatal("expected a vibration issue in Zone D")
	}
	if !issues[0].Immediate {
		t.Error("Zone D must be immediate tier")
	}
}

func TestEvaluateVibration_TemperatureIndependent(t *testing.T) {
	verdict, issues := EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 0.5, Vertical: 0.4, Axial: 0.2}, 90, mediumRigidSpec())

	if verdict.Severity.Level != data.LevelNormal {
		t.Errorf("expected normal vibration, got %s", verdict.Severity.Level)
	}
	if verdict.Temperature.Zone != "Critical" {
		t.Errorf("expected Critical temperature band at 90 degC, got %s", verdict.Temperature.Zone)
	}
	if len(issues) != 1 || issues[0].Category != data.CategoryTemperature {
		t.Fatalf("expected a single temperature issue, got %+v", issues)
	}
	if issues[0].Immediate {
		t.Error("Critical band is not the overheat tier")
	}

	_, issues = EvaluateVibration(mustPoint(t, "motor_de"),
		data.VibrationReading{Horizontal: 0.5, Vertical: 0.4, Axial: 0.2}, 100, mediumRigidSpec())
	if len(issues) != 1 || !issues[0].Immediate {
		t.Errorf("expected an immediate overheat issue at 100 degC, got %+v", issues)
	}
}
