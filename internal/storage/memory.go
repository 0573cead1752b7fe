// internal/storage/memory.go
package storage

import (
	"sync"

	"github.com/alkavf71/pump-basic/internal/data"
)

const maxReports = 100 // keep the last 100 diagnostic runs

// ReportStore is a bounded in-memory buffer of recent diagnostic reports.
// The rule engine itself is stateless; this buffer only feeds the UI and
// websocket history and is discarded with the process.
type ReportStore struct {
	mu       sync.RWMutex
	buffer   []data.DiagnosticReport
	capacity int
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		buffer:   make([]data.DiagnosticReport, 0, maxReports),
		capacity: maxReports,
	}
}

func (s *ReportStore) Add(report data.DiagnosticReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buffer) >= s.capacity {
		s.buffer = s.buffer[1:]
	}
	s.buffer = append(s.buffer, report)
}

// Recent returns up to count reports, newest last. Non-positive or oversized
// counts return everything buffered.
func (s *ReportStore) Recent(count int) []data.DiagnosticReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if count <= 0 || count > len(s.buffer) {
		count = len(s.buffer)
	}
	out := make([]data.DiagnosticReport, count)
	copy(out, s.buffer[len(s.buffer)-count:])
	return out
}

// Latest returns the newest report for one piece of equipment.
func (s *ReportStore) Latest(equipmentID string) (data.DiagnosticReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.buffer) - 1; i >= 0; i-- {
		if s.buffer[i].EquipmentID == equipmentID {
			return s.buffer[i], true
		}
	}
	return data.DiagnosticReport{}, false
}
