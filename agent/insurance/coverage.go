package insurance

import (
	"fmt"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
)

// CoverageSummary reports how much of the primary policy's coverage
// ceiling remains after approved and closed claims.
type CoverageSummary struct {
	CustomerID         string  `json:"customer_id"`
	PolicyID           string  `json:"policy_id"`
	TotalCoverage      float64 `json:"total_coverage"`
	AmountClaimed      float64 `json:"amount_claimed"`
	RemainingCoverage  float64 `json:"remaining_coverage"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

func (s *Service) CalculateRemainingCoverage(customerID string) (CoverageSummary, error) {
	u, ok, err := s.user(customerID)
	if err != nil {
		return CoverageSummary{}, err
	}
	if !ok {
		return CoverageSummary{}, fmt.Errorf("%w: customer %s not found", contractx.ErrNotFound, customerID)
	}

	p, ok, err := s.policy(u.PolicyID)
	if err != nil {
		return CoverageSummary{}, err
	}
	if !ok {
		return CoverageSummary{}, fmt.Errorf("%w: policy %s not found", contractx.ErrNotFound, u.PolicyID)
	}

	settled, err := s.scanClaims(func(c Claim) bool {
		return c.UserID == customerID && (c.Status == ClaimApproved || c.Status == ClaimClosed)
	})
	if err != nil {
		return CoverageSummary{}, err
	}

	var claimed float64
	for _, c := range settled {
		claimed += c.Amount
	}

	remaining := p.CoverageAmount - claimed
	if remaining < 0 {
		remaining = 0
	}
	var utilization float64
	if p.CoverageAmount > 0 {
		utilization = round2(claimed / p.CoverageAmount * 100)
	}

	return CoverageSummary{
		CustomerID:         customerID,
		PolicyID:           u.PolicyID,
		TotalCoverage:      p.CoverageAmount,
		AmountClaimed:      claimed,
		RemainingCoverage:  remaining,
		UtilizationPercent: utilization,
	}, nil
}
