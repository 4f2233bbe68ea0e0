package insurance

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
)

// CustomerPolicies lists the policies linked to a customer. The user
// record links a single primary policy, so the list has at most one entry.
type CustomerPolicies struct {
	CustomerID string   `json:"customer_id"`
	Policies   []Policy `json:"policies"`
	Count      int      `json:"count"`
	Warning    string   `json:"warning,omitempty"`
}

func (s *Service) GetCustomerPolicies(customerID string) (CustomerPolicies, error) {
	u, ok, err := s.user(customerID)
	if err != nil {
		return CustomerPolicies{}, err
	}
	if !ok {
		return CustomerPolicies{}, fmt.Errorf("%w: customer %s not found", contractx.ErrNotFound, customerID)
	}

	out := CustomerPolicies{CustomerID: customerID, Policies: []Policy{}}
	if u.PolicyID == "" {
		return out, nil
	}

	p, ok, err := s.policy(u.PolicyID)
	if err != nil {
		return CustomerPolicies{}, err
	}
	if !ok {
		log.Warn().Str("customer_id", customerID).Str("policy_id", u.PolicyID).Msg("linked policy not found")
		out.Warning = fmt.Sprintf("policy %s not found", u.PolicyID)
		return out, nil
	}

	out.Policies = append(out.Policies, p)
	out.Count = 1
	return out, nil
}

func (s *Service) GetPolicyDetails(policyID string) (Policy, error) {
	p, ok, err := s.policy(policyID)
	if err != nil {
		return Policy{}, err
	}
	if !ok {
		return Policy{}, fmt.Errorf("%w: policy %s not found", contractx.ErrNotFound, policyID)
	}
	if p.Status == "" {
		p.Status = PolicyActive
	}
	return p, nil
}

// PaymentSchedule breaks the annual premium into payment cadences,
// rounded to cents.
type PaymentSchedule struct {
	Annual     float64 `json:"annual"`
	SemiAnnual float64 `json:"semi_annual"`
	Quarterly  float64 `json:"quarterly"`
	Monthly    float64 `json:"monthly"`
}

type PremiumBreakdown struct {
	PolicyID         string          `json:"policy_id"`
	PolicyType       PolicyType      `json:"policy_type"`
	Coverage         float64         `json:"coverage"`
	AnnualPremium    float64         `json:"annual_premium"`
	MonthlyPremium   float64         `json:"monthly_premium"`
	QuarterlyPremium float64         `json:"quarterly_premium"`
	PaymentSchedule  PaymentSchedule `json:"payment_schedule"`
}

func (s *Service) GetPremiumBreakdown(policyID string) (PremiumBreakdown, error) {
	p, ok, err := s.policy(policyID)
	if err != nil {
		return PremiumBreakdown{}, err
	}
	if !ok {
		return PremiumBreakdown{}, fmt.Errorf("%w: policy %s not found", contractx.ErrNotFound, policyID)
	}

	annual := p.Premium
	return PremiumBreakdown{
		PolicyID:         policyID,
		PolicyType:       p.PolicyType,
		Coverage:         p.CoverageAmount,
		AnnualPremium:    round2(annual),
		MonthlyPremium:   round2(annual / 12),
		QuarterlyPremium: round2(annual / 4),
		PaymentSchedule: PaymentSchedule{
			Annual:     round2(annual),
			SemiAnnual: round2(annual / 2),
			Quarterly:  round2(annual / 4),
			Monthly:    round2(annual / 12),
		},
	}, nil
}
