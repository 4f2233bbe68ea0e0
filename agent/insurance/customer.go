package insurance

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
)

// CustomerInfo is the contact-detail view of a user. Found is false when
// the customer id is unknown; that is a regular result, not an error.
type CustomerInfo struct {
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	JoinDate    string `json:"join_date,omitempty"`
	Found       bool   `json:"found"`
}

func (s *Service) GetCustomerInformation(customerID string) (CustomerInfo, error) {
	u, ok, err := s.user(customerID)
	if err != nil {
		return CustomerInfo{}, err
	}
	if !ok {
		log.Warn().Str("customer_id", customerID).Msg("customer not found")
		return CustomerInfo{CustomerID: customerID, Found: false}, nil
	}
	return CustomerInfo{
		CustomerID:  customerID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		DateOfBirth: u.DateOfBirth,
		JoinDate:    u.JoinDate,
		Found:       true,
	}, nil
}

// UserPolicyInfo joins a user with their primary policy.
type UserPolicyInfo struct {
	User   User   `json:"user"`
	Policy Policy `json:"policy"`
}

func (s *Service) GetUserPolicyInfo(userID string) (UserPolicyInfo, error) {
	u, ok, err := s.user(userID)
	if err != nil {
		return UserPolicyInfo{}, err
	}
	if !ok {
		return UserPolicyInfo{}, fmt.Errorf("%w: user %s not found", contractx.ErrNotFound, userID)
	}

	p, ok, err := s.policy(u.PolicyID)
	if err != nil {
		return UserPolicyInfo{}, err
	}
	if !ok {
		log.Warn().Str("user_id", userID).Str("policy_id", u.PolicyID).Msg("linked policy not found")
		return UserPolicyInfo{}, fmt.Errorf("%w: policy %s for user %s not found", contractx.ErrNotFound, u.PolicyID, userID)
	}

	return UserPolicyInfo{User: u, Policy: p}, nil
}
