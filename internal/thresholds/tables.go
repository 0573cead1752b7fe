// internal/thresholds/tables.go
package thresholds

import "github.com/alkavf71/pump-basic/internal/data"

// ZoneLimits are the ascending upper bounds of vibration zones A, B, and C
// in mm/s RMS. Values above C are Zone D.
type ZoneLimits struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Boundaries returns the limits in classifier order.
func (z ZoneLimits) Boundaries() []float64 {
	return []float64{z.A, z.B, z.C}
}

// ISOZones are the labels matching ZoneLimits boundaries (N+1 zones).
var ISOZones = []string{"Zone A", "Zone B", "Zone C", "Zone D"}

type vibrationKey struct {
	Group      data.SizeGroup
	Foundation data.Foundation
}

// iso10816 holds the ISO 10816-3 severity zones keyed by machine size group
// and foundation class.
var iso10816 = map[vibrationKey]ZoneLimits{
	{data.SizeSmall, data.FoundationRigid}:     {A: 0.71, B: 1.8, C: 4.5},
	{data.SizeSmall, data.FoundationFlexible}:  {A: 1.12, B: 2.8, C: 7.1},
	{data.SizeMedium, data.FoundationRigid}:    {A: 1.12, B: 2.8, C: 7.1},
	{data.SizeMedium, data.FoundationFlexible}: {A: 1.8, B: 4.5, C: 11.2},
	{data.SizeLarge, data.FoundationRigid}:     {A: 1.8, B: 4.5, C: 11.2},
	{data.SizeLarge, data.FoundationFlexible}:  {A: 2.8, B: 7.1, C: 18.0},
}

// defaultVibration is the fail-closed fallback for unrecognized group or
// foundation combinations (medium machine on a rigid base).
var defaultVibration = ZoneLimits{A: 1.12, B: 2.8, C: 7.1}

// Vibration looks up the ISO 10816-3 zone limits for a machine. Unknown
// combinations fall back to the documented default so the classifier stays
// total over every spec it can be handed.
func Vibration(group data.SizeGroup, foundation data.Foundation) (ZoneLimits, string) {
	if z, ok := iso10816[vibrationKey{group, foundation}]; ok {
		return z, "ISO 10816-3"
	}
	return defaultVibration, "ISO 10816-3 (default)"
}

// SizeGroupForPower derives the machine size group from the power rating.
func SizeGroupForPower(powerKW float64) data.SizeGroup {
	switch {
	case powerKW < 15:
		return data.SizeSmall
	case powerKW <= 75:
		return data.SizeMedium
	default:
		return data.SizeLarge
	}
}

// PumpLimits is the flat API 610 severity set for pump bearing housings.
type PumpLimits struct {
	Acceptable float64 `json:"acceptable"`
	Alert      float64 `json:"alert"`
}

// API610 vibration limits at the bearing housing, mm/s RMS. Readings beyond
// Alert are in the trip band.
var API610 = PumpLimits{Acceptable: 3.0, Alert: 4.5}

// API610Zones are the labels for the pump-standard table.
var API610Zones = []string{"Acceptable", "Alert", "Trip"}

func (p PumpLimits) Boundaries() []float64 {
	return []float64{p.Acceptable, p.Alert}
}

// TemperatureLimits are the bearing temperature bands in degrees Celsius.
type TemperatureLimits struct {
	Normal   float64 `json:"normal"`
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// Temperature bands per IEC 60034-1 class B rise over a 40 degC ambient.
var Temperature = TemperatureLimits{Normal: 70, Warning: 85, Critical: 95}

// TemperatureZones label the temperature bands; Overheat is unbounded.
var TemperatureZones = []string{"Normal", "Warning", "Critical", "Overheat"}

func (t TemperatureLimits) Boundaries() []float64 {
	return []float64{t.Normal, t.Warning, t.Critical}
}

// AccelerationLimits are the summed-band envelope limits in g RMS.
type AccelerationLimits struct {
	Normal  float64 `json:"normal"`
	Warning float64 `json:"warning"`
}

var Acceleration = AccelerationLimits{Normal: 5.0, Warning: 10.0}

// AccelerationZones label the envelope bands; the last is severe damage.
var AccelerationZones = []string{"Normal", "Warning", "Critical"}

func (a AccelerationLimits) Boundaries() []float64 {
	return []float64{a.Normal, a.Warning}
}

// Early bearing fault triggers: either is sufficient on its own.
const (
	HighBandRatio = 0.4 // 5-16 kHz share of the band total
	HighBandAbs   = 3.0 // g RMS, absolute high-band floor
)

// Electrical limits. Voltage unbalance is held tighter than current
// unbalance per the IEC/NEMA MG-1 convention (a small voltage unbalance
// drives a disproportionate current unbalance).
const (
	VoltageUnbalancePct      = 1.0
	CurrentUnbalanceMinorPct = 5.0
	CurrentUnbalanceMajorPct = 10.0
	UnderVoltageRatio        = 0.90
	UnderLoadPct             = 40.0
	OverLoadPct              = 100.0
)

// Hydraulic limits, pressures in bar.
const (
	CavitationSuction   = 1.0  // suction below this risks cavitation...
	CavitationDischarge = 5.0  // ...when discharge is above this
	CriticalSuction     = 0.5  // immediate tier regardless of discharge
	MinDifferential     = 1.0  // below this with positive discharge: blockage/recirculation
	BEPRatio            = 0.70 // differential vs head-derived pressure floor
	RPMDeviationPct     = 5.0
	HeadToBar           = 0.0981 // metres of water column to bar (rho g h)
)

// Reference bundles every static table for the read-only reference endpoint,
// the JSON counterpart of the operator-facing sidebar tables.
type Reference struct {
	VibrationISO10816 map[string]ZoneLimits `json:"vibration_iso10816"`
	VibrationAPI610   PumpLimits            `json:"vibration_api610"`
	Temperature       TemperatureLimits     `json:"temperature"`
	Acceleration      AccelerationLimits    `json:"acceleration"`
	VoltageUnbalance  float64               `json:"voltage_unbalance_pct"`
	CurrentUnbalance  []float64             `json:"current_unbalance_pct"`
}

// Tables returns the full static reference set.
func Tables() Reference {
	iso := make(map[string]ZoneLimits, len(iso10816))
	for k, v := range iso10816 {
		iso[string(k.Group)+"/"+string(k.Foundation)] = v
	}
	return Reference{
		VibrationISO10816: iso,
		VibrationAPI610:   API610,
		Temperature:       Temperature,
		Acceleration:      Acceleration,
		VoltageUnbalance:  VoltageUnbalancePct,
		CurrentUnbalance:  []float64{CurrentUnbalanceMinorPct, CurrentUnbalanceMajorPct},
	}
}
