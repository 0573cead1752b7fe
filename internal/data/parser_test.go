package data

import (
	"strings"
	"testing"
)

func TestParseAnalysisRequest_AxialZeroedForNDEPoints(t *testing.T) {
	raw := []byte(`{
		"equipment_id": "P-101A",
		"spec": {"power_kw": 55, "foundation": "rigid"},
		"points": [
			{"point": "motor_nde", "vibration": {"horizontal": 1.0, "vertical": 1.2, "axial": 2.0}}
		]
	}`)

	req, err := ParseAnalysisRequest(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if req.Points[0].Vibration.Axial != 0 {
		t.Errorf("expected axial forced to 0 for an NDE point, got %.2f", req.Points[0].Vibration.Axial)
	}
	if req.Points[0].Vibration.Horizontal != 1.0 {
		t.Errorf("horizontal must pass through unchanged, got %.2f", req.Points[0].Vibration.Horizontal)
	}
}

func TestParseAnalysisRequest_NegativeRejected(t *testing.T) {
	raw := []byte(`{
		"points": [
			{"point": "motor_de", "vibration": {"horizontal": -0.5, "vertical": 1.0, "axial": 0.2}}
		]
	}`)

	if _, err := ParseAnalysisRequest(raw); err == nil {
		t.Fatal("expected negative reading to be rejected")
	}

	raw = []byte(`{"electrical": {"current_r": -1}}`)
	if _, err := ParseAnalysisRequest(raw); err == nil {
		t.Fatal("expected negative current to be rejected")
	}
}

func TestParseAnalysisRequest_UnknownAndDuplicatePoints(t *testing.T) {
	raw := []byte(`{"points": [{"point": "gearbox"}]}`)
	if _, err := ParseAnalysisRequest(raw); err == nil || !strings.Contains(err.Error(), "unknown measurement point") {
		t.Errorf("expected unknown-point error, got %v", err)
	}

	raw = []byte(`{"points": [{"point": "motor_de"}, {"point": "motor_de"}]}`)
	if _, err := ParseAnalysisRequest(raw); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate-point error, got %v", err)
	}
}

func TestParseAnalysisRequest_SpecNormalization(t *testing.T) {
	raw := []byte(`{
		"spec": {"foundation": "Rigid", "coupling": "FLEXIBLE", "standard": "API-610"}
	}`)

	req, err := ParseAnalysisRequest(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if req.Spec.Foundation != FoundationRigid {
		t.Errorf("expected normalized foundation, got %q", req.Spec.Foundation)
	}
	if req.Spec.Coupling != CouplingFlexible {
		t.Errorf("expected normalized coupling, got %q", req.Spec.Coupling)
	}
	if req.Spec.Standard != StandardAPI610 {
		t.Errorf("expected normalized standard, got %q", req.Spec.Standard)
	}
}

func TestParseAnalysisRequest_AllZeroTolerated(t *testing.T) {
	raw := []byte(`{
		"points": [{"point": "motor_de"}, {"point": "pump_de"}]
	}`)
	req, err := ParseAnalysisRequest(raw)
	if err != nil {
		t.Fatalf("all-zero snapshot must parse, got %v", err)
	}
	if len(req.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(req.Points))
	}
}

func TestParseAnalysisRequest_MalformedJSON(t *testing.T) {
	if _, err := ParseAnalysisRequest([]byte(`{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}
