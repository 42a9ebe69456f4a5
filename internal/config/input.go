package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/endowment-irr/internal/calculation"
	"github.com/rpgo/endowment-irr/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput marks policy inputs that fail the product rules.
var ErrInvalidInput = errors.New("invalid policy input")

// ProjectionRequest is the on-disk description of one projection run.
type ProjectionRequest struct {
	Policy                 domain.PolicyInputs `yaml:"policy" json:"inputs"`
	IncludeTaxBenefitInIRR bool                `yaml:"include_tax_benefit_in_irr" json:"include_tax_benefit_in_irr"`
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*ProjectionRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, completes and validates a YAML projection request.
func (ip *InputParser) Parse(data []byte) (*ProjectionRequest, error) {
	var req ProjectionRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.Complete(&req.Policy)

	if err := ip.ValidatePolicyInputs(&req.Policy); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &req, nil
}

// Complete derives whichever of premium and sum assured was left out.
func (ip *InputParser) Complete(inputs *domain.PolicyInputs) {
	switch {
	case inputs.Premium.IsZero() && inputs.SumAssured.IsPositive():
		inputs.Premium = calculation.PremiumForSumAssured(inputs.SumAssured)
	case inputs.SumAssured.IsZero() && inputs.Premium.IsPositive():
		inputs.SumAssured = calculation.SumAssuredForPremium(inputs.Premium)
	}
}

// ValidatePolicyInputs applies the product's entry rules. The projection engine
// itself accepts any numbers; this is the gate in front of it.
func (ip *InputParser) ValidatePolicyInputs(inputs *domain.PolicyInputs) error {
	if inputs.Age < 0 || inputs.Age > domain.MaxEntryAge {
		return fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, domain.MaxEntryAge)
	}
	if inputs.ExpectedReturn.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: expected return cannot be negative", ErrInvalidInput)
	}
	if inputs.TaxBase.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: tax base cannot be negative", ErrInvalidInput)
	}
	if inputs.SumAssured.LessThan(domain.MinSumAssured) {
		return fmt.Errorf("%w: sum assured must be at least %s", ErrInvalidInput, domain.MinSumAssured.StringFixed(0))
	}
	if inputs.Premium.LessThan(domain.MinPremium) {
		return fmt.Errorf("%w: premium must be at least %s", ErrInvalidInput, domain.MinPremium.StringFixed(0))
	}
	return nil
}

// CreateExampleRequest returns the default form values.
func (ip *InputParser) CreateExampleRequest() *ProjectionRequest {
	sumAssured := decimal.NewFromInt(100000)
	return &ProjectionRequest{
		Policy: domain.PolicyInputs{
			Age:            30,
			ExpectedReturn: decimal.NewFromInt(5),
			TaxBase:        decimal.NewFromInt(20),
			SumAssured:     sumAssured,
			Premium:        calculation.PremiumForSumAssured(sumAssured),
		},
	}
}

// MarshalRequest renders a projection request as YAML.
func MarshalRequest(req *ProjectionRequest) ([]byte, error) {
	return yaml.Marshal(req)
}

// SaveRequest writes a projection request as YAML.
func SaveRequest(req *ProjectionRequest, filename string) error {
	b, err := MarshalRequest(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
