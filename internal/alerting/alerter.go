// internal/alerting/alerter.go
package alerting

import (
	"log"
	"time"

	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/websocket"
)

// Alert is the wire form of one detected issue pushed to dashboards.
type Alert struct {
	Timestamp   time.Time          `json:"timestamp"`
	EquipmentID string             `json:"equipment_id"`
	Source      string             `json:"source"`
	Severity    data.SeverityLevel `json:"severity"`
	Message     string             `json:"message"`
	Immediate   bool               `json:"immediate"`
}

type Alerter struct {
	hub *websocket.Hub
}

func NewAlerter(hub *websocket.Hub) *Alerter {
	return &Alerter{hub: hub}
}

// ProcessReport broadcasts every warning-or-worse issue from a completed
// report. All-clear reports produce no alerts.
func (a *Alerter) ProcessReport(report data.DiagnosticReport) {
	if a.hub == nil {
		return
	}
	for _, issue := range report.Issues {
		if issue.Level < data.LevelWarning {
			continue
		}
		alert := Alert{
			Timestamp:   report.GeneratedAt,
			EquipmentID: report.EquipmentID,
			Source:      issue.Source,
			Severity:    issue.Level,
			Message:     issue.Description,
			Immediate:   issue.Immediate,
		}
		log.Printf("ALERT [%s] %s: %s", issue.Level, report.EquipmentID, issue.Description)
		a.hub.BroadcastAlert(alert)
	}
}
