package insurance

import (
	"fmt"
	"strings"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
)

// Store namespaces for the three record types.
const (
	NamespaceUsers    = "users"
	NamespacePolicies = "policies"
	NamespaceClaims   = "claims"
)

type PolicyType string

const (
	PolicyHealth PolicyType = "Health"
	PolicyAuto   PolicyType = "Auto"
	PolicyHome   PolicyType = "Home"
	PolicyLife   PolicyType = "Life"
	PolicyTravel PolicyType = "Travel"
)

type PolicyStatus string

const (
	PolicyActive   PolicyStatus = "Active"
	PolicyInactive PolicyStatus = "Inactive"
)

type ClaimStatus string

const (
	ClaimProcessing         ClaimStatus = "Processing"
	ClaimApproved           ClaimStatus = "Approved"
	ClaimClosed             ClaimStatus = "Closed"
	ClaimUnderInvestigation ClaimStatus = "Under Investigation"
	ClaimDenied             ClaimStatus = "Denied"
)

// ValidClaimStatuses returns the claim statuses in their canonical order.
func ValidClaimStatuses() []ClaimStatus {
	return []ClaimStatus{
		ClaimProcessing,
		ClaimApproved,
		ClaimClosed,
		ClaimUnderInvestigation,
		ClaimDenied,
	}
}

// ParseClaimStatus matches the exact status string; no case folding.
func ParseClaimStatus(s string) (ClaimStatus, error) {
	for _, valid := range ValidClaimStatuses() {
		if s == string(valid) {
			return valid, nil
		}
	}
	names := make([]string, 0, 5)
	for _, valid := range ValidClaimStatuses() {
		names = append(names, string(valid))
	}
	return "", fmt.Errorf("%w: invalid status %q, valid options: %s",
		contractx.ErrValidation, s, strings.Join(names, ", "))
}

// User is a customer record. Users are seeded once and read-only afterwards.
// PolicyID links the user to their primary policy.
type User struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	JoinDate    string `json:"join_date"`
	PolicyID    string `json:"policy_id,omitempty"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.UserID) == "" {
		return fmt.Errorf("%w: user id is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: user %s has no name", contractx.ErrValidation, u.UserID)
	}
	return nil
}

// Policy is an insurance contract owned by a user. Premium is annual.
type Policy struct {
	PolicyID       string       `json:"policy_id"`
	UserID         string       `json:"user_id"`
	PolicyType     PolicyType   `json:"policy_type"`
	Premium        float64      `json:"premium"`
	Deductible     float64      `json:"deductible"`
	CoverageAmount float64      `json:"coverage_amount"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	Status         PolicyStatus `json:"status"`
}

func (p Policy) Validate() error {
	if strings.TrimSpace(p.PolicyID) == "" {
		return fmt.Errorf("%w: policy id is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("%w: policy %s has no owner", contractx.ErrValidation, p.PolicyID)
	}
	switch p.PolicyType {
	case PolicyHealth, PolicyAuto, PolicyHome, PolicyLife, PolicyTravel:
	default:
		return fmt.Errorf("%w: policy %s has invalid type %q", contractx.ErrValidation, p.PolicyID, p.PolicyType)
	}
	switch p.Status {
	case PolicyActive, PolicyInactive, "":
	default:
		return fmt.Errorf("%w: policy %s has invalid status %q", contractx.ErrValidation, p.PolicyID, p.Status)
	}
	return nil
}

// Claim is a request against a policy. Seeded claims carry ClaimDate;
// claims created at runtime carry CreatedDate and LastUpdated instead.
type Claim struct {
	ClaimID     string      `json:"claim_id"`
	PolicyID    string      `json:"policy_id"`
	UserID      string      `json:"user_id"`
	ClaimType   string      `json:"claim_type,omitempty"`
	ClaimDate   string      `json:"claim_date,omitempty"`
	Amount      float64     `json:"amount"`
	Status      ClaimStatus `json:"status"`
	Description string      `json:"description,omitempty"`
	CreatedDate string      `json:"created_date,omitempty"`
	LastUpdated string      `json:"last_updated,omitempty"`
}

func (c Claim) Validate() error {
	if strings.TrimSpace(c.ClaimID) == "" {
		return fmt.Errorf("%w: claim id is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.PolicyID) == "" {
		return fmt.Errorf("%w: claim %s has no policy", contractx.ErrValidation, c.ClaimID)
	}
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: claim %s has no user", contractx.ErrValidation, c.ClaimID)
	}
	if _, err := ParseClaimStatus(string(c.Status)); err != nil {
		return fmt.Errorf("%w: claim %s has invalid status %q", contractx.ErrValidation, c.ClaimID, c.Status)
	}
	return nil
}
