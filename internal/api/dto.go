package api

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// ProjectionRequest is the body of POST /api/projections and /api/reports.
type ProjectionRequest struct {
	Inputs                 domain.PolicyInputs `json:"inputs"`
	IncludeTaxBenefitInIRR bool                `json:"include_tax_benefit_in_irr"`
}

// QuoteRequest carries exactly one of sum assured or premium.
type QuoteRequest struct {
	SumAssured *decimal.Decimal `json:"sum_assured,omitempty"`
	Premium    *decimal.Decimal `json:"premium,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
