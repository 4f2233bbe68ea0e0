package insurance

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
)

type ClaimsExistence struct {
	CustomerID string `json:"customer_id"`
	HasClaims  bool   `json:"has_claims"`
	ClaimCount int    `json:"claim_count"`
}

func (s *Service) CheckClaimsExist(customerID string) (ClaimsExistence, error) {
	claims, err := s.scanClaims(func(c Claim) bool { return c.UserID == customerID })
	if err != nil {
		return ClaimsExistence{}, err
	}
	return ClaimsExistence{
		CustomerID: customerID,
		HasClaims:  len(claims) > 0,
		ClaimCount: len(claims),
	}, nil
}

type CustomerClaims struct {
	CustomerID  string  `json:"customer_id"`
	Claims      []Claim `json:"claims"`
	TotalClaims int     `json:"total_claims"`
}

func (s *Service) GetCustomerClaims(customerID string) (CustomerClaims, error) {
	claims, err := s.scanClaims(func(c Claim) bool { return c.UserID == customerID })
	if err != nil {
		return CustomerClaims{}, err
	}
	return CustomerClaims{
		CustomerID:  customerID,
		Claims:      claims,
		TotalClaims: len(claims),
	}, nil
}

type ClaimStatusInfo struct {
	ClaimID     string      `json:"claim_id"`
	CustomerID  string      `json:"customer_id"`
	Status      ClaimStatus `json:"status"`
	Amount      float64     `json:"amount"`
	LastUpdated string      `json:"last_updated"`
}

func (s *Service) GetClaimStatus(claimID string) (ClaimStatusInfo, error) {
	c, ok, err := s.claim(claimID)
	if err != nil {
		return ClaimStatusInfo{}, err
	}
	if !ok {
		return ClaimStatusInfo{}, fmt.Errorf("%w: claim %s not found", contractx.ErrNotFound, claimID)
	}

	lastUpdated := c.LastUpdated
	if lastUpdated == "" {
		// Seeded claims carry no mutation timestamp.
		lastUpdated = s.CurrentSystemDate()
	}
	return ClaimStatusInfo{
		ClaimID:     claimID,
		CustomerID:  c.UserID,
		Status:      c.Status,
		Amount:      c.Amount,
		LastUpdated: lastUpdated,
	}, nil
}

type NewClaimReceipt struct {
	Success bool   `json:"success"`
	ClaimID string `json:"claim_id"`
	Message string `json:"message"`
	Claim   Claim  `json:"claim"`
}

// AddNewClaim validates the customer, the policy, the policy status, and
// policy ownership before writing anything; a failed validation leaves the
// store untouched.
func (s *Service) AddNewClaim(customerID, policyID string, amount float64, description string) (NewClaimReceipt, error) {
	u, ok, err := s.user(customerID)
	if err != nil {
		return NewClaimReceipt{}, err
	}
	if !ok {
		log.Warn().Str("customer_id", customerID).Msg("claim creation for unknown customer")
		return NewClaimReceipt{}, fmt.Errorf("%w: customer %s not found", contractx.ErrNotFound, customerID)
	}

	p, ok, err := s.policy(policyID)
	if err != nil {
		return NewClaimReceipt{}, err
	}
	if !ok {
		return NewClaimReceipt{}, fmt.Errorf("%w: policy %s not found", contractx.ErrNotFound, policyID)
	}
	if p.Status != "" && p.Status != PolicyActive {
		log.Warn().Str("policy_id", policyID).Str("status", string(p.Status)).Msg("claim creation on inactive policy")
		return NewClaimReceipt{}, fmt.Errorf("%w: policy %s is not active", contractx.ErrValidation, policyID)
	}
	if u.PolicyID != policyID && p.UserID != customerID {
		return NewClaimReceipt{}, fmt.Errorf("%w: customer %s does not have policy %s", contractx.ErrValidation, customerID, policyID)
	}

	now := s.CurrentSystemDate()
	c := Claim{
		ClaimID:     s.claimID(),
		UserID:      customerID,
		PolicyID:    policyID,
		Amount:      amount,
		Status:      ClaimProcessing,
		Description: description,
		CreatedDate: now,
		LastUpdated: now,
	}
	s.store.Put(NamespaceClaims, c.ClaimID, c)
	log.Info().Str("claim_id", c.ClaimID).Str("customer_id", customerID).Str("policy_id", policyID).Msg("claim created")

	return NewClaimReceipt{
		Success: true,
		ClaimID: c.ClaimID,
		Message: fmt.Sprintf("Claim %s created successfully", c.ClaimID),
		Claim:   c,
	}, nil
}

type ClaimStatusUpdate struct {
	Success   bool        `json:"success"`
	ClaimID   string      `json:"claim_id"`
	NewStatus ClaimStatus `json:"new_status"`
	Message   string      `json:"message"`
	Claim     Claim       `json:"claim"`
}

// UpdateClaimStatus moves a claim to any of the valid statuses; there is
// no transition graph, a Closed claim can reopen.
func (s *Service) UpdateClaimStatus(claimID, newStatus string) (ClaimStatusUpdate, error) {
	c, ok, err := s.claim(claimID)
	if err != nil {
		return ClaimStatusUpdate{}, err
	}
	if !ok {
		return ClaimStatusUpdate{}, fmt.Errorf("%w: claim %s not found", contractx.ErrNotFound, claimID)
	}

	status, err := ParseClaimStatus(newStatus)
	if err != nil {
		log.Warn().Str("claim_id", claimID).Str("status", newStatus).Msg("invalid claim status")
		return ClaimStatusUpdate{}, err
	}

	c.ClaimID = claimID
	c.Status = status
	c.LastUpdated = s.CurrentSystemDate()
	s.store.Put(NamespaceClaims, claimID, c)
	log.Info().Str("claim_id", claimID).Str("status", string(status)).Msg("claim status updated")

	return ClaimStatusUpdate{
		Success:   true,
		ClaimID:   claimID,
		NewStatus: status,
		Message:   fmt.Sprintf("Claim %s status updated to %s", claimID, status),
		Claim:     c,
	}, nil
}

type ClaimsByStatus struct {
	Status string  `json:"status"`
	Claims []Claim `json:"claims"`
	Count  int     `json:"count"`
}

// FilterClaimsByStatus matches the status string exactly; an unknown
// status yields an empty result rather than an error.
func (s *Service) FilterClaimsByStatus(status string) (ClaimsByStatus, error) {
	claims, err := s.scanClaims(func(c Claim) bool { return string(c.Status) == status })
	if err != nil {
		return ClaimsByStatus{}, err
	}
	return ClaimsByStatus{
		Status: status,
		Claims: claims,
		Count:  len(claims),
	}, nil
}
