package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
	insurx "github.com/bpeddi/simple-ai-agent/agent/insurance"
)

// Tool names form the boundary contract the agent runtime binds
// arguments against; renaming one is a breaking change.
const (
	ToolGetCustomerInformation     = "get_customer_information"
	ToolGetUserPolicyInfo          = "get_user_policy_info"
	ToolGetCustomerPolicies        = "get_customer_policies"
	ToolGetPolicyDetails           = "get_policy_details"
	ToolCheckClaimsExist           = "check_claims_exist"
	ToolGetCustomerClaims          = "get_customer_claims"
	ToolGetClaimStatus             = "get_claim_status"
	ToolAddNewClaim                = "add_new_claim"
	ToolUpdateClaimStatus          = "update_claim_status"
	ToolCalculateRemainingCoverage = "calculate_remaining_coverage"
	ToolGetPremiumBreakdown        = "get_premium_breakdown"
	ToolFilterClaimsByStatus       = "filter_claims_by_status"
	ToolGetCurrentSystemDate       = "get_current_system_date"
)

// Executor runs one named tool with loosely typed arguments. Failures come
// back inside the ToolResult; the error return is reserved for broken
// plumbing, never for a failed lookup or validation.
type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Build returns the tool declarations and a matching executor bound to the
// given domain service.
func Build(svc *insurx.Service) ([]*schema.ToolInfo, Executor) {
	return Infos(), NewExecutor(svc)
}

// Infos declares the thirteen insurance tools in their registry order.
func Infos() []*schema.ToolInfo {
	customerID := func(desc string) map[string]*schema.ParameterInfo {
		return map[string]*schema.ParameterInfo{
			"customer_id": {Type: schema.String, Desc: desc, Required: true},
		}
	}
	policyID := func(desc string) map[string]*schema.ParameterInfo {
		return map[string]*schema.ParameterInfo{
			"policy_id": {Type: schema.String, Desc: desc, Required: true},
		}
	}

	return []*schema.ToolInfo{
		{
			Name:        ToolGetCustomerInformation,
			Desc:        "Get customer information and contact details.",
			ParamsOneOf: schema.NewParamsOneOfByParams(customerID(`The unique customer ID (e.g. "u1", "u2")`)),
		},
		{
			Name: ToolGetUserPolicyInfo,
			Desc: "Retrieve the user record together with the user's primary policy.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_id": {Type: schema.String, Desc: "The unique user ID", Required: true},
			}),
		},
		{
			Name:        ToolGetCustomerPolicies,
			Desc:        "Retrieve all policies for a customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(customerID("The unique customer ID")),
		},
		{
			Name:        ToolGetPolicyDetails,
			Desc:        "Get detailed policy information including coverage amounts, deductibles, and premiums.",
			ParamsOneOf: schema.NewParamsOneOfByParams(policyID(`The unique policy ID (e.g. "p1", "p2")`)),
		},
		{
			Name:        ToolCheckClaimsExist,
			Desc:        "Check if claims exist in the system for a customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(customerID("The unique customer ID")),
		},
		{
			Name:        ToolGetCustomerClaims,
			Desc:        "View all claims for a specific customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(customerID("The unique customer ID")),
		},
		{
			Name: ToolGetClaimStatus,
			Desc: "Get current status of any claim (Processing, Approved, Closed, Under Investigation, Denied).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"claim_id": {Type: schema.String, Desc: `The unique claim ID (e.g. "c1", "c2")`, Required: true},
			}),
		},
		{
			Name: ToolAddNewClaim,
			Desc: "Add a new claim, validating that the customer holds an active policy.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "The unique customer ID", Required: true},
				"policy_id":   {Type: schema.String, Desc: "The unique policy ID", Required: true},
				"amount":      {Type: schema.Number, Desc: "Claim amount", Required: true},
				"description": {Type: schema.String, Desc: "Optional claim description"},
			}),
		},
		{
			Name: ToolUpdateClaimStatus,
			Desc: "Update claim status (Processing, Approved, Closed, Under Investigation, Denied).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"claim_id":   {Type: schema.String, Desc: "The unique claim ID", Required: true},
				"new_status": {Type: schema.String, Desc: "New status for the claim", Required: true},
			}),
		},
		{
			Name:        ToolCalculateRemainingCoverage,
			Desc:        "Calculate coverage remaining after approved and closed claims.",
			ParamsOneOf: schema.NewParamsOneOfByParams(customerID("The unique customer ID")),
		},
		{
			Name:        ToolGetPremiumBreakdown,
			Desc:        "Get the premium breakdown (annual, semi-annual, quarterly, monthly payments).",
			ParamsOneOf: schema.NewParamsOneOfByParams(policyID("The unique policy ID")),
		},
		{
			Name: ToolFilterClaimsByStatus,
			Desc: "Filter claims by status across all customers.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"status": {Type: schema.String, Desc: "Claim status to filter by (Processing, Approved, Closed, Under Investigation, Denied)", Required: true},
			}),
		},
		{
			Name: ToolGetCurrentSystemDate,
			Desc: "Get the current system date and time.",
		},
	}
}

// NewExecutor dispatches tool calls to the domain service and flattens
// domain errors into ToolResult.Error messages.
func NewExecutor(svc *insurx.Service) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		result, err := dispatch(svc, tool, args)
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: result}, nil
	}
}

func dispatch(svc *insurx.Service, tool string, args map[string]any) (any, error) {
	switch tool {
	case ToolGetCustomerInformation:
		id, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return svc.GetCustomerInformation(id)

	case ToolGetUserPolicyInfo:
		id, err := stringArg(args, "user_id")
		if err != nil {
			return nil, err
		}
		return svc.GetUserPolicyInfo(id)

	case ToolGetCustomerPolicies:
		id, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return svc.GetCustomerPolicies(id)

	case ToolGetPolicyDetails:
		id, err := stringArg(args, "policy_id")
		if err != nil {
			return nil, err
		}
		return svc.GetPolicyDetails(id)

	case ToolCheckClaimsExist:
		id, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return svc.CheckClaimsExist(id)

	case ToolGetCustomerClaims:
		id, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return svc.GetCustomerClaims(id)

	case ToolGetClaimStatus:
		id, err := stringArg(args, "claim_id")
		if err != nil {
			return nil, err
		}
		return svc.GetClaimStatus(id)

	case ToolAddNewClaim:
		customerID, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		policyID, err := stringArg(args, "policy_id")
		if err != nil {
			return nil, err
		}
		amount, err := numberArg(args, "amount")
		if err != nil {
			return nil, err
		}
		description := optionalStringArg(args, "description")
		return svc.AddNewClaim(customerID, policyID, amount, description)

	case ToolUpdateClaimStatus:
		claimID, err := stringArg(args, "claim_id")
		if err != nil {
			return nil, err
		}
		newStatus, err := stringArg(args, "new_status")
		if err != nil {
			return nil, err
		}
		return svc.UpdateClaimStatus(claimID, newStatus)

	case ToolCalculateRemainingCoverage:
		id, err := stringArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return svc.CalculateRemainingCoverage(id)

	case ToolGetPremiumBreakdown:
		id, err := stringArg(args, "policy_id")
		if err != nil {
			return nil, err
		}
		return svc.GetPremiumBreakdown(id)

	case ToolFilterClaimsByStatus:
		status, err := stringArg(args, "status")
		if err != nil {
			return nil, err
		}
		return svc.FilterClaimsByStatus(status)

	case ToolGetCurrentSystemDate:
		return svc.CurrentSystemDate(), nil

	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
}
