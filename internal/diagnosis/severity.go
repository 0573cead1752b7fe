// internal/diagnosis/severity.go
package diagnosis

import "github.com/alkavf71/pump-basic/internal/data"

// Classify maps a scalar measurement onto an ordered zone table. boundaries
// are ascending upper bounds; zones must hold exactly one more label than
// boundaries, the last zone being unbounded. A value sitting exactly on a
// boundary escalates into the next zone, which keeps the mapping monotonic:
// a larger value can never classify into a lower zone.
//
// Level mapping is uniform across every table: the first zone is normal, the
// second is warning, everything beyond is critical. Terminal is set only for
// the unbounded last zone (Zone D, Trip, Overheat), the tier that the report
// aggregator treats as requiring immediate shutdown.
func Classify(value float64, boundaries []float64, zones []string, standard string) data.SeverityVerdict {
	for i, limit := range boundaries {
		if value < limit {
			return data.SeverityVerdict{
				Zone:     zones[i],
				Level:    levelForZone(i),
				Limit:    limit,
				Standard: standard,
			}
		}
	}
	last := len(zones) - 1
	return data.SeverityVerdict{
		Zone:     zones[last],
		Level:    levelForZone(last),
		Limit:    boundaries[len(boundaries)-1],
		Standard: standard,
		Terminal: true,
	}
}

func levelForZone(index int) data.SeverityLevel {
	switch index {
	case 0:
		return data.LevelNormal
	case 1:
		return data.LevelWarning
	default:
		return data.LevelCritical
	}
}
