package data

import "time"

// SeverityLevel is the ordinal severity bucket shared by every measurement
// channel. Comparisons (>=) are meaningful: Normal < Warning < Critical.
type SeverityLevel int

const (
	LevelNormal SeverityLevel = iota
	LevelWarning
	LevelCritical
)

func (l SeverityLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "normal"
	}
}

// MarshalJSON emits the textual form so API clients never see raw ordinals.
func (l SeverityLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *SeverityLevel) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"warning"`:
		*l = LevelWarning
	case `"critical"`:
		*l = LevelCritical
	default:
		*l = LevelNormal
	}
	return nil
}

// PumpStandard selects which severity table applies to pump bearing points.
type PumpStandard string

const (
	StandardISO10816 PumpStandard = "ISO10816"
	StandardAPI610   PumpStandard = "API610"
)

// Foundation describes how the machine is mounted, per ISO 10816-3.
type Foundation string

const (
	FoundationRigid    Foundation = "rigid"
	FoundationFlexible Foundation = "flexible"
)

// Coupling is the stiffness class of the motor-pump coupling.
type Coupling string

const (
	CouplingRigid    Coupling = "rigid"
	CouplingFlexible Coupling = "flexible"
)

// SizeGroup is the machine size class derived from the power rating.
type SizeGroup string

const (
	SizeSmall  SizeGroup = "small"  // < 15 kW
	SizeMedium SizeGroup = "medium" // 15 - 75 kW
	SizeLarge  SizeGroup = "large"  // > 75 kW
)

// MeasurementPoint identifies one bearing location on the motor-pump train.
// AxialCapable is false for NDE points, where an axial probe cannot be
// mounted; their axial reading is forced to zero at the parsing boundary.
type MeasurementPoint struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Pump         bool   `json:"pump"`
	AxialCapable bool   `json:"axial_capable"`
}

var measurementPoints = []MeasurementPoint{
	{ID: "motor_de", Label: "Motor DE (B1)", Pump: false, AxialCapable: true},
	{ID: "motor_nde", Label: "Motor NDE (B2)", Pump: false, AxialCapable: false},
	{ID: "pump_de", Label: "Pump DE (B3)", Pump: true, AxialCapable: true},
	{ID: "pump_nde", Label: "Pump NDE (B4)", Pump: true, AxialCapable: false},
}

// PointByID resolves a wire identifier to its measurement point.
func PointByID(id string) (MeasurementPoint, bool) {
	for _, p := range measurementPoints {
		if p.ID == id {
			return p, true
		}
	}
	return MeasurementPoint{}, false
}

// Points returns the canonical four bearing locations in train order.
func Points() []MeasurementPoint {
	out := make([]MeasurementPoint, len(measurementPoints))
	copy(out, measurementPoints)
	return out
}

// VibrationReading holds the directional velocity magnitudes (mm/s RMS) for
// one bearing point.
type VibrationReading struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
	Axial      float64 `json:"axial"`
}

// Sum is the directional total used for ratio-based fault pattern matching.
func (r VibrationReading) Sum() float64 {
	return r.Horizontal + r.Vertical + r.Axial
}

// Max is the dominant directional magnitude used for severity classification.
func (r VibrationReading) Max() float64 {
	m := r.Horizontal
	if r.Vertical > m {
		m = r.Vertical
	}
	if r.Axial > m {
		m = r.Axial
	}
	return m
}

// AccelerationReading holds the band-split acceleration magnitudes (g RMS):
// Low 0.5-1.5 kHz, Mid 1.5-5 kHz, High 5-16 kHz.
type AccelerationReading struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Total is the summed band energy used for envelope severity classification.
func (r AccelerationReading) Total() float64 {
	return r.Low + r.Mid + r.High
}

// PointReadings bundles everything measured at one bearing location.
type PointReadings struct {
	Point        string              `json:"point"`
	Vibration    VibrationReading    `json:"vibration"`
	Temperature  float64             `json:"temperature"`
	Acceleration AccelerationReading `json:"acceleration"`
}

// ElectricalReading is the three-phase electrical snapshot of the motor.
type ElectricalReading struct {
	VoltageR     float64 `json:"voltage_r"`
	VoltageS     float64 `json:"voltage_s"`
	VoltageT     float64 `json:"voltage_t"`
	CurrentR     float64 `json:"current_r"`
	CurrentS     float64 `json:"current_s"`
	CurrentT     float64 `json:"current_t"`
	RatedVoltage float64 `json:"rated_voltage"`
	FullLoadAmps float64 `json:"full_load_amps"`
}

// HydraulicReading is the process-side snapshot. Flow, head, and the RPM pair
// are optional; zero means "not supplied".
type HydraulicReading struct {
	SuctionPressure   float64 `json:"suction_pressure"`
	DischargePressure float64 `json:"discharge_pressure"`
	FlowRate          float64 `json:"flow_rate,omitempty"`
	Head              float64 `json:"head,omitempty"`
	RatedRPM          float64 `json:"rated_rpm,omitempty"`
	ActualRPM         float64 `json:"actual_rpm,omitempty"`
}

// EquipmentSpec carries the nameplate parameters that select thresholds.
type EquipmentSpec struct {
	PowerKW    float64      `json:"power_kw"`
	RatedRPM   float64      `json:"rated_rpm"`
	Coupling   Coupling     `json:"coupling"`
	Foundation Foundation   `json:"foundation"`
	Standard   PumpStandard `json:"standard"`
}

// AnalysisRequest is the full input snapshot for one diagnostic run.
type AnalysisRequest struct {
	EquipmentID string            `json:"equipment_id"`
	Spec        EquipmentSpec     `json:"spec"`
	Points      []PointReadings   `json:"points"`
	Electrical  ElectricalReading `json:"electrical"`
	Hydraulic   HydraulicReading  `json:"hydraulic"`
}

// SeverityVerdict is the result of classifying one scalar against a zone
// table. Terminal marks the unbounded last zone (Zone D, Trip, Overheat),
// the tier that demands immediate shutdown.
type SeverityVerdict struct {
	Zone     string        `json:"zone"`
	Level    SeverityLevel `json:"level"`
	Limit    float64       `json:"limit"`
	Standard string        `json:"standard"`
	Terminal bool          `json:"terminal,omitempty"`
}

// FaultKind labels the dominant directional vibration pattern.
type FaultKind string

const (
	FaultNone         FaultKind = ""
	FaultMisalignment FaultKind = "Misalignment"
	FaultUnbalance    FaultKind = "Unbalance"
	FaultLooseness    FaultKind = "MechanicalLooseness"
)

// FaultFinding pairs a fault label with the numbers that triggered it.
type FaultFinding struct {
	Kind   FaultKind `json:"kind"`
	Reason string    `json:"reason"`
}

// Category keys the recommendation table. Each distinct category present in
// the issue list contributes exactly one recommendation.
type Category string

const (
	CategoryMisalignment  Category = "misalignment"
	CategoryUnbalance     Category = "unbalance"
	CategoryLooseness     Category = "mechanical_looseness"
	CategoryHighVibration Category = "high_vibration"
	CategoryBearing       Category = "bearing"
	CategoryTemperature   Category = "temperature"
	CategoryElectrical    Category = "electrical"
	CategoryHydraulic     Category = "hydraulic"
)

// DiagnosticIssue is one detected problem. Immediate is set only by the
// terminal-tier triggers (Zone D, trip, overheat, severe bearing damage,
// critical suction), never re-derived from the zone label text.
type DiagnosticIssue struct {
	Source      string        `json:"source"`
	Description string        `json:"description"`
	Level       SeverityLevel `json:"level"`
	Category    Category      `json:"category,omitempty"`
	Immediate   bool          `json:"immediate,omitempty"`
}

// VibrationVerdict is the per-point mechanical verdict: independent severity
// and temperature classifications plus an optional fault pattern.
type VibrationVerdict struct {
	Point       string          `json:"point"`
	Severity    SeverityVerdict `json:"severity"`
	Temperature SeverityVerdict `json:"temperature"`
	Fault       *FaultFinding   `json:"fault,omitempty"`
}

// BearingVerdict is the per-point acceleration-band verdict.
type BearingVerdict struct {
	Point      string          `json:"point"`
	Severity   SeverityVerdict `json:"severity"`
	EarlyFault bool            `json:"early_fault"`
	Detail     string          `json:"detail,omitempty"`
}

// ElectricalStatus is the composite three-phase verdict. Findings keeps every
// tripped rule; the evaluator never short-circuits on the first one.
type ElectricalStatus struct {
	Healthy             bool     `json:"healthy"`
	VoltageUnbalancePct float64  `json:"voltage_unbalance_pct"`
	CurrentUnbalancePct float64  `json:"current_unbalance_pct"`
	LoadPercent         float64  `json:"load_percent"`
	Findings            []string `json:"findings,omitempty"`
}

// HydraulicStatus is the process-side verdict.
type HydraulicStatus struct {
	Differential float64  `json:"differential"`
	Status       string   `json:"status"`
	Findings     []string `json:"findings,omitempty"`
}

// OverallStatus is the aggregated call on the whole machine train.
type OverallStatus string

const (
	StatusAllClear  OverallStatus = "All Clear"
	StatusScheduled OverallStatus = "Requires Scheduled Attention"
	StatusImmediate OverallStatus = "Requires Immediate Shutdown"
)

// Recommendation is one action item keyed by its fault category.
type Recommendation struct {
	Category Category `json:"category"`
	Action   string   `json:"action"`
}

// DiagnosticReport is the complete output of one analysis run.
type DiagnosticReport struct {
	ID              string             `json:"id"`
	EquipmentID     string             `json:"equipment_id"`
	GeneratedAt     time.Time          `json:"generated_at"`
	Vibration       []VibrationVerdict `json:"vibration"`
	Bearings        []BearingVerdict   `json:"bearings"`
	Electrical      ElectricalStatus   `json:"electrical"`
	Hydraulic       HydraulicStatus    `json:"hydraulic"`
	Issues          []DiagnosticIssue  `json:"issues"`
	Overall         OverallStatus      `json:"overall"`
	Recommendations []Recommendation   `json:"recommendations"`
}
