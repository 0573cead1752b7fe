// internal/api/handlers.go
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/alkavf71/pump-basic/internal/alerting"
	"github.com/alkavf71/pump-basic/internal/auth"
	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/diagnosis"
	"github.com/alkavf71/pump-basic/internal/storage"
	"github.com/alkavf71/pump-basic/internal/thresholds"
	"github.com/alkavf71/pump-basic/internal/websocket"
)

var upgrader = gwebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type APIHandler struct {
	store           *storage.ReportStore
	hub             *websocket.Hub
	alerter         *alerting.Alerter
	auth            *auth.Manager
	limits          diagnosis.ElectricalLimits
	defaultStandard data.PumpStandard
}

func NewAPIHandler(store *storage.ReportStore, hub *websocket.Hub, alerter *alerting.Alerter, authManager *auth.Manager, limits diagnosis.ElectricalLimits, defaultStandard data.PumpStandard) *APIHandler {
	return &APIHandler{
		store:           store,
		hub:             hub,
		alerter:         alerter,
		auth:            authManager,
		limits:          limits,
		defaultStandard: defaultStandard,
	}
}

// Authenticate guards a handler with the API-key / bearer-token middleware.
func (h *APIHandler) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return h.auth.Middleware(next)
}

// HandleLogin exchanges operator credentials for a JWT.
func (h *APIHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	role, err := h.auth.AuthenticateUser(creds.Username, creds.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := h.auth.GenerateJWT(creds.Username, role)
	if err != nil {
		log.Printf("token generation error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token, "role": role})
}

// HandleDiagnose runs one full analysis: parse and normalize the snapshot,
// evaluate every channel, store the report, and broadcast it.
func (h *APIHandler) HandleDiagnose(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req, err := data.ParseAnalysisRequest(body)
	if err != nil {
		log.Printf("rejected analysis request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Spec.Standard == "" {
		req.Spec.Standard = h.defaultStandard
	}

	report := diagnosis.Analyze(*req, h.limits)

	h.store.Add(report)
	h.hub.BroadcastReport(report)
	h.alerter.ProcessReport(report)

	writeJSON(w, http.StatusOK, report)
}

// HandleReports returns the recent-report buffer, newest last.
func (h *APIHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}
	if equipmentID := r.URL.Query().Get("equipment_id"); equipmentID != "" {
		report, ok := h.store.Latest(equipmentID)
		if !ok {
			http.Error(w, "no report for equipment", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, []data.DiagnosticReport{report})
		return
	}
	writeJSON(w, http.StatusOK, h.store.Recent(count))
}

// HandleThresholds serves the static reference tables and the canonical
// measurement points.
func (h *APIHandler) HandleThresholds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tables": thresholds.Tables(),
		"points": data.Points(),
	})
}

// HandleHealth is a liveness probe.
func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleWebSocket upgrades a connection and attaches it to the hub feed.
func (h *APIHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	client := &websocket.Client{Hub: h.hub, Conn: conn, Send: make(chan []byte, 256)}
	client.Hub.RegisterClient(client)
	go client.WritePump()
	go client.ReadPump()
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("response encode error: %v", err)
	}
}
