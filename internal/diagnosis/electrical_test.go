package diagnosis

import (
	"strings"
	"testing"

	"github.com/alkavf71/pump-basic/internal/data"
)

func TestEvaluateElectrical_NoData(t *testing.T) {
	status, issues := EvaluateElectrical(data.ElectricalReading{}, DefaultElectricalLimits())
	if !status.Healthy {
		t.Error("expected healthy status for an all-zero snapshot")
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %d", len(issues))
	}
}

func TestEvaluateElectrical_UnderVoltageUsesAverageNotMinimum(t *testing.T) {
	// Phase R alone (342 V) sits at 90% of rated, but the average of 367.3 V
	// does not, so under-voltage must NOT trip. The 6.9% per-phase deviation
	// trips the voltage unbalance rule instead.
	status, issues := EvaluateElectrical(data.ElectricalReading{
		VoltageR:     342,
		VoltageS:     380,
		VoltageT:     380,
		RatedVoltage: 380,
	}, DefaultElectricalLimits())

	for _, finding := range status.Findings {
		if strings.Contains(finding, "under-voltage") {
			t.Errorf("under-voltage tripped on a healthy average: %s", finding)
		}
	}
	if status.VoltageUnbalancePct < 6.8 || status.VoltageUnbalancePct > 7.0 {
		t.Errorf("expected ~6.9%% voltage unbalance, got %.2f%%", status.VoltageUnbalancePct)
	}
	if len(issues) != 1 {
		t.Fatalf("expected exactly the voltage unbalance issue, got %+v", issues)
	}
	if issues[0].Category != data.CategoryElectrical {
		t.Errorf("expected electrical category, got %s", issues[0].Category)
	}
}

func TestEvaluateElectrical_Healthy(t *testing.T) {
	status, issues := EvaluateElectrical(data.ElectricalReading{
		VoltageR: 380, VoltageS: 381, VoltageT: 379,
		CurrentR: 50, CurrentS: 51, CurrentT: 49,
		RatedVoltage: 380,
		FullLoadAmps: 100,
	}, DefaultElectricalLimits())

	if !status.Healthy {
		t.Errorf("expected healthy, findings: %v", status.Findings)
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
	if status.LoadPercent < 49 || status.LoadPercent > 51 {
		t.Errorf("expected ~50%% load, got %.1f%%", status.LoadPercent)
	}
}

func TestEvaluateElectrical_CurrentUnbalanceTiers(t *testing.T) {
	limits := DefaultElectricalLimits()

	// ~7.7% deviation: minor tier, warning.
	_, issues := EvaluateElectrical(data.ElectricalReading{
		CurrentR: 100, CurrentS: 100, CurrentT: 112,
	}, limits)
	if len(issues) != 1 || issues[0].Level != data.LevelWarning {
		t.Errorf("expected one warning for minor unbalance, got %+v", issues)
	}

	// ~15.4% deviation: major tier, critical.
	_, issues = EvaluateElectrical(data.ElectricalReading{
		CurrentR: 100, CurrentS: 100, CurrentT: 125,
	}, limits)
	if len(issues) != 1 || issues[0].Level != data.LevelCritical {
		t.Errorf("expected one critical for major unbalance, got %+v", issues)
	}
}

func TestEvaluateElectrical_LoadFlags(t *testing.T) {
	limits := DefaultElectricalLimits()

	status, issues := EvaluateElectrical(data.ElectricalReading{
		CurrentR: 30, CurrentS: 30, CurrentT: 30,
		FullLoadAmps: 100,
	}, limits)
	if len(issues) != 1 || issues[0].Level != data.LevelWarning {
		t.Errorf("expected an under-loading warning at 30%% FLA, got %+v", issues)
	}
	if status.LoadPercent != 30 {
		t.Errorf("expected 30%% load, got %.1f%%", status.LoadPercent)
	}

	_, issues = EvaluateElectrical(data.ElectricalReading{
		CurrentR: 110, CurrentS: 110, CurrentT: 110,
		FullLoadAmps: 100,
	}, limits)
	if len(issues) != 1 || issues[0].Level != data.LevelCritical {
		t.Errorf("expected a critical overload at 110%% FLA, got %+v", issues)
	}
}

func TestEvaluateElectrical_FindingsAccumulate(t *testing.T) {
	// Unbalanced voltage, unbalanced current, and under-loading all at once;
	// nothing short-circuits.
	status, issues := EvaluateElectrical(data.ElectricalReading{
		VoltageR: 342, VoltageS: 380, VoltageT: 380,
		CurrentR: 20, CurrentS: 20, CurrentT: 24,
		RatedVoltage: 380,
		FullLoadAmps: 100,
	}, DefaultElectricalLimits())

	if status.Healthy {
		t.Error("expected unhealthy composite status")
	}
	if len(issues) != 3 {
		t.Errorf("expected voltage unbalance + current unbalance + under-loading, got %+v", issues)
	}
}
