package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/rpgo/endowment-irr/internal/calculation"
	"github.com/rpgo/endowment-irr/internal/config"
	"github.com/rpgo/endowment-irr/internal/output"
)

// maxBodyBytes bounds request bodies; a projection request is a handful of numbers.
const maxBodyBytes = 1 << 16

var errQuoteAmount = errors.New("exactly one of sum_assured or premium is required")

// Handler holds the dependencies shared by all endpoints. The engine is
// stateless per call, so one Handler serves concurrent requests.
type Handler struct {
	Engine *calculation.CalculationEngine
	Parser *config.InputParser
	Log    logrus.FieldLogger
}

// NewHandler creates a handler projecting against the given engine.
func NewHandler(engine *calculation.CalculationEngine, log logrus.FieldLogger) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Handler{Engine: engine, Parser: config.NewInputParser(), Log: log}
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Project runs a projection and returns the yearly schedule with both IRRs.
// POST /api/projections
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProjection(w, r)
	if !ok {
		return
	}
	result := h.Engine.Project(req.Inputs, req.IncludeTaxBenefitInIRR)
	writeJSON(w, http.StatusOK, result)
}

// Report renders a projection with one of the output formatters.
// POST /api/reports?format=html
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, "Unsupported format",
			fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format))
		return
	}
	req, ok := h.decodeProjection(w, r)
	if !ok {
		return
	}
	report := h.Engine.BuildReport(req.Inputs, req.IncludeTaxBenefitInIRR)
	body, err := f.Format(report)
	if err != nil {
		h.Log.WithError(err).WithField("format", f.Name()).Error("render report")
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}
	w.Header().Set("Content-Type", contentType(f.Extension()))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Quote derives premium from sum assured or the reverse.
// POST /api/quotes
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	var quote calculation.PremiumQuote
	switch {
	case req.SumAssured != nil && req.Premium == nil:
		quote = calculation.QuoteFromSumAssured(*req.SumAssured)
	case req.Premium != nil && req.SumAssured == nil:
		quote = calculation.QuoteFromPremium(*req.Premium)
	default:
		writeError(w, http.StatusBadRequest, "Invalid quote request", errQuoteAmount)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// RateTables returns the tables the engine projects against.
// GET /api/rate-tables
func (h *Handler) RateTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.Rates)
}

// decodeProjection reads, completes and validates a projection request,
// writing a 400 response when it fails.
func (h *Handler) decodeProjection(w http.ResponseWriter, r *http.Request) (*ProjectionRequest, bool) {
	var req ProjectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}
	h.Parser.Complete(&req.Inputs)
	if err := h.Parser.ValidatePolicyInputs(&req.Inputs); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid policy inputs", err)
		return nil, false
	}
	return &req, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func contentType(ext string) string {
	switch ext {
	case "html":
		return "text/html; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	case "json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
