package data

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseAnalysisRequest decodes and normalizes one analysis request. It is the
// only place raw operator input crosses into the rule engine, so it enforces
// the boundary invariants: every point identifier must be known, readings must
// be non-negative, and axial velocity is zeroed for points that cannot carry
// an axial probe. All-zero readings pass through; the evaluators interpret
// them as "no data", not as an error.
func ParseAnalysisRequest(raw []byte) (*AnalysisRequest, error) {
	var req AnalysisRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode analysis request: %w", err)
	}

	seen := make(map[string]bool, len(req.Points))
	for i := range req.Points {
		pr := &req.Points[i]
		point, ok := PointByID(pr.Point)
		if !ok {
			return nil, fmt.Errorf("unknown measurement point %q", pr.Point)
		}
		if seen[pr.Point] {
			return nil, fmt.Errorf("duplicate measurement point %q", pr.Point)
		}
		seen[pr.Point] = true

		if err := checkNonNegative(point.Label, map[string]float64{
			"horizontal velocity": pr.Vibration.Horizontal,
			"vertical velocity":   pr.Vibration.Vertical,
			"axial velocity":      pr.Vibration.Axial,
			"temperature":         pr.Temperature,
			"low band":            pr.Acceleration.Low,
			"mid band":            pr.Acceleration.Mid,
			"high band":           pr.Acceleration.High,
		}); err != nil {
			return nil, err
		}

		if !point.AxialCapable {
			pr.Vibration.Axial = 0
		}
	}

	if err := checkNonNegative("electrical", map[string]float64{
		"voltage R": req.Electrical.VoltageR,
		"voltage S": req.Electrical.VoltageS,
		"voltage T": req.Electrical.VoltageT,
		"current R": req.Electrical.CurrentR,
		"current S": req.Electrical.CurrentS,
		"current T": req.Electrical.CurrentT,
	}); err != nil {
		return nil, err
	}
	if err := checkNonNegative("hydraulic", map[string]float64{
		"suction pressure":   req.Hydraulic.SuctionPressure,
		"discharge pressure": req.Hydraulic.DischargePressure,
		"flow rate":          req.Hydraulic.FlowRate,
		"head":               req.Hydraulic.Head,
	}); err != nil {
		return nil, err
	}

	req.Spec = normalizeSpec(req.Spec)
	return &req, nil
}

// normalizeSpec canonicalizes the free-text spec selectors. Unrecognized
// values are left as-is; the threshold tables fall back to their documented
// default rather than failing.
func normalizeSpec(spec EquipmentSpec) EquipmentSpec {
	switch strings.ToLower(string(spec.Foundation)) {
	case "rigid":
		spec.Foundation = FoundationRigid
	case "flexible":
		spec.Foundation = FoundationFlexible
	}
	switch strings.ToLower(string(spec.Coupling)) {
	case "rigid":
		spec.Coupling = CouplingRigid
	case "flexible":
		spec.Coupling = CouplingFlexible
	}
	switch strings.ToUpper(strings.ReplaceAll(string(spec.Standard), " ", "")) {
	case "API610", "API-610":
		spec.Standard = StandardAPI610
	case "ISO10816", "ISO-10816", "ISO10816-3":
		spec.Standard = StandardISO10816
	}
	return spec
}

func checkNonNegative(scope string, fields map[string]float64) error {
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%s: %s must not be negative (got %g)", scope, name, v)
		}
	}
	return nil
}
