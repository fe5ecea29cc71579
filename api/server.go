// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine invocation
// and output serialization. It never performs tariff logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"port-tariff/core/engine"
	"port-tariff/core/types"
	"port-tariff/internal/logging"
)

// Server is the API server
type Server struct {
	calc    *engine.Calculator
	mux     *http.ServeMux
	version string
}

// NewServer creates an API server over a calculator
func NewServer(calc *engine.Calculator, version string) *Server {
	s := &Server{
		calc:    calc,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /calculate", s.handleCalculate)
	s.mux.HandleFunc("GET /rules", s.handleRules)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleCalculate handles POST /calculate
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	// Missing vessel type is a well-formed empty result for the
	// engine, but at the API boundary it is a caller mistake.
	if req.Parameters.VesselType == "" {
		s.writeError(w, "VALIDATION_ERROR", "parameters.vessel_type is required", http.StatusBadRequest)
		return
	}
	if !req.Parameters.VesselType.Valid() {
		s.writeError(w, "VALIDATION_ERROR", "unknown vessel_type: "+req.Parameters.VesselType.String(), http.StatusBadRequest)
		return
	}

	result := s.calc.Calculate(&req.Parameters)

	resp := toResponse(result)
	db := s.calc.Database()
	resp.Metadata = &ResponseMetadata{
		InputHash:     computeInputHash(&req),
		EngineVersion: s.version,
		RulesVersion:  db.Version,
		PortName:      db.PortName,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	logging.Info("calculation served",
		zap.String("vessel_type", req.Parameters.VesselType.String()),
		zap.Float64("total", resp.Total),
		zap.String("input_hash", resp.Metadata.InputHash))

	s.writeJSON(w, resp, http.StatusOK)
}

// handleRules handles GET /rules with optional vessel_type and
// component query filters
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	db := s.calc.Database()
	vesselType := r.URL.Query().Get("vessel_type")
	component := r.URL.Query().Get("component")

	rules := db.RulesFor(types.VesselType(vesselType), types.TariffComponent(component))
	summaries := make([]RuleSummary, 0, len(rules))
	for _, rule := range rules {
		summaries = append(summaries, RuleSummary{
			VesselType:     rule.VesselType.String(),
			Component:      rule.Component.String(),
			ChargingMethod: rule.ChargingMethod.String(),
			Bands:          len(rule.Bands),
			Conditions:     len(rule.Conditions),
			Description:    rule.Description,
		})
	}

	s.writeJSON(w, map[string]any{
		"port_name": db.PortName,
		"version":   db.Version,
		"count":     len(summaries),
		"rules":     summaries,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":  "healthy",
		"version": s.version,
		"rules":   s.calc.Database().Len(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	db := s.calc.Database()
	s.writeJSON(w, map[string]string{
		"version":       s.version,
		"engine":        "port-tariff",
		"rules_version": db.Version,
		"port_name":     db.PortName,
	}, http.StatusOK)
}

// computeInputHash builds a deterministic hash of the request so
// identical inputs are provably answered identically
func computeInputHash(req *CalculateRequest) string {
	data, err := json.Marshal(req.Parameters)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Server) writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Error: code, Message: message}, status)
}
