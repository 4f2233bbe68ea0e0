package insurance

import (
	"fmt"

	storex "github.com/bpeddi/simple-ai-agent/agent/store"
)

// Sample datasets loaded once at startup. PolicyID on each user is the
// user's primary policy (the first policy issued to them).
var seedUsers = []User{
	{UserID: "u1", Name: "Alice Johnson", Email: "alice.johnson@email.com", Phone: "+1-555-0101", Address: "123 Main St, New York, NY 10001", DateOfBirth: "1994-03-15", JoinDate: "2020-06-15", PolicyID: "p1"},
	{UserID: "u2", Name: "Bob Smith", Email: "bob.smith@email.com", Phone: "+1-555-0102", Address: "456 Oak Ave, Los Angeles, CA 90001", DateOfBirth: "1979-07-22", JoinDate: "2018-03-10", PolicyID: "p2"},
	{UserID: "u3", Name: "Charlie Davis", Email: "charlie.davis@email.com", Phone: "+1-555-0103", Address: "789 Pine Ln, Chicago, IL 60601", DateOfBirth: "1996-11-08", JoinDate: "2021-01-20", PolicyID: "p3"},
	{UserID: "u4", Name: "Diana Wilson", Email: "diana.wilson@email.com", Phone: "+1-555-0104", Address: "321 Elm St, Houston, TX 77001", DateOfBirth: "1988-05-30", JoinDate: "2019-09-12", PolicyID: "p4"},
	{UserID: "u5", Name: "Edward Martinez", Email: "edward.martinez@email.com", Phone: "+1-555-0105", Address: "654 Birch Rd, Phoenix, AZ 85001", DateOfBirth: "1985-12-10", JoinDate: "2017-02-28", PolicyID: "p6"},
	{UserID: "u6", Name: "Fiona Brown", Email: "fiona.brown@email.com", Phone: "+1-555-0106", Address: "987 Cedar Way, Philadelphia, PA 19103", DateOfBirth: "1991-09-25", JoinDate: "2022-04-05", PolicyID: "p7"},
	{UserID: "u7", Name: "George Taylor", Email: "george.taylor@email.com", Phone: "+1-555-0107", Address: "147 Maple Dr, San Antonio, TX 78201", DateOfBirth: "1983-01-18", JoinDate: "2020-11-14", PolicyID: "p9"},
	{UserID: "u8", Name: "Hannah Anderson", Email: "hannah.anderson@email.com", Phone: "+1-555-0108", Address: "258 Spruce Ave, San Diego, CA 92101", DateOfBirth: "1993-08-07", JoinDate: "2021-07-22", PolicyID: "p10"},
}

var seedPolicies = []Policy{
	{PolicyID: "p1", UserID: "u1", PolicyType: PolicyHealth, Premium: 350.00, Deductible: 1000.00, CoverageAmount: 500000, StartDate: "2023-06-15", EndDate: "2025-06-15", Status: PolicyActive},
	{PolicyID: "p2", UserID: "u2", PolicyType: PolicyAuto, Premium: 120.00, Deductible: 500.00, CoverageAmount: 250000, StartDate: "2022-03-10", EndDate: "2026-03-10", Status: PolicyActive},
	{PolicyID: "p3", UserID: "u3", PolicyType: PolicyHome, Premium: 850.00, Deductible: 2000.00, CoverageAmount: 750000, StartDate: "2021-01-20", EndDate: "2026-01-20", Status: PolicyActive},
	{PolicyID: "p4", UserID: "u4", PolicyType: PolicyLife, Premium: 45.00, Deductible: 0.00, CoverageAmount: 1000000, StartDate: "2019-09-12", EndDate: "2029-09-12", Status: PolicyActive},
	{PolicyID: "p5", UserID: "u1", PolicyType: PolicyAuto, Premium: 95.00, Deductible: 250.00, CoverageAmount: 300000, StartDate: "2023-01-01", EndDate: "2026-01-01", Status: PolicyActive},
	{PolicyID: "p6", UserID: "u5", PolicyType: PolicyHealth, Premium: 275.00, Deductible: 1500.00, CoverageAmount: 400000, StartDate: "2023-02-14", EndDate: "2025-02-14", Status: PolicyActive},
	{PolicyID: "p7", UserID: "u6", PolicyType: PolicyTravel, Premium: 85.00, Deductible: 100.00, CoverageAmount: 50000, StartDate: "2024-01-01", EndDate: "2027-01-01", Status: PolicyActive},
	{PolicyID: "p8", UserID: "u2", PolicyType: PolicyHome, Premium: 920.00, Deductible: 1500.00, CoverageAmount: 600000, StartDate: "2022-05-20", EndDate: "2026-05-20", Status: PolicyActive},
	{PolicyID: "p9", UserID: "u7", PolicyType: PolicyLife, Premium: 60.00, Deductible: 0.00, CoverageAmount: 750000, StartDate: "2020-11-14", EndDate: "2030-11-14", Status: PolicyActive},
	{PolicyID: "p10", UserID: "u8", PolicyType: PolicyAuto, Premium: 130.00, Deductible: 750.00, CoverageAmount: 350000, StartDate: "2021-07-22", EndDate: "2025-07-22", Status: PolicyActive},
	{PolicyID: "p11", UserID: "u3", PolicyType: PolicyLife, Premium: 55.00, Deductible: 0.00, CoverageAmount: 500000, StartDate: "2021-01-20", EndDate: "2031-01-20", Status: PolicyActive},
	{PolicyID: "p12", UserID: "u5", PolicyType: PolicyAuto, Premium: 105.00, Deductible: 500.00, CoverageAmount: 200000, StartDate: "2023-03-15", EndDate: "2026-03-15", Status: PolicyInactive},
}

var seedClaims = []Claim{
	{ClaimID: "c1", PolicyID: "p1", UserID: "u1", ClaimType: "Medical Treatment", ClaimDate: "2024-05-10", Amount: 5000.00, Status: ClaimApproved, Description: "Emergency room visit and hospital stay for appendicitis"},
	{ClaimID: "c2", PolicyID: "p2", UserID: "u2", ClaimType: "Vehicle Damage", ClaimDate: "2024-06-20", Amount: 15000.00, Status: ClaimProcessing, Description: "Collision damage to vehicle - hit and run incident"},
	{ClaimID: "c3", PolicyID: "p3", UserID: "u3", ClaimType: "Property Damage", ClaimDate: "2024-04-05", Amount: 7000.00, Status: ClaimDenied, Description: "Water damage from burst pipe - claimed wear and tear"},
	{ClaimID: "c4", PolicyID: "p1", UserID: "u1", ClaimType: "Prescription Coverage", ClaimDate: "2024-07-15", Amount: 2500.00, Status: ClaimApproved, Description: "Monthly prescription medications for chronic condition management"},
	{ClaimID: "c5", PolicyID: "p3", UserID: "u3", ClaimType: "Home Maintenance", ClaimDate: "2024-08-01", Amount: 12000.00, Status: ClaimUnderInvestigation, Description: "Roof replacement due to storm damage"},
	{ClaimID: "c6", PolicyID: "p2", UserID: "u2", ClaimType: "Liability Claim", ClaimDate: "2024-03-12", Amount: 8500.00, Status: ClaimClosed, Description: "Third-party liability claim - settlement reached"},
	{ClaimID: "c7", PolicyID: "p6", UserID: "u5", ClaimType: "Medical Treatment", ClaimDate: "2024-09-05", Amount: 3500.00, Status: ClaimApproved, Description: "Routine surgery and post-operative care"},
	{ClaimID: "c8", PolicyID: "p8", UserID: "u2", ClaimType: "Fire Damage", ClaimDate: "2024-10-15", Amount: 45000.00, Status: ClaimUnderInvestigation, Description: "Kitchen fire damage - structural repairs needed"},
	{ClaimID: "c9", PolicyID: "p10", UserID: "u8", ClaimType: "Windshield Replacement", ClaimDate: "2024-11-01", Amount: 600.00, Status: ClaimApproved, Description: "Rock damage to windshield while driving on highway"},
	{ClaimID: "c10", PolicyID: "p7", UserID: "u6", ClaimType: "Trip Cancellation", ClaimDate: "2024-08-20", Amount: 2000.00, Status: ClaimClosed, Description: "Travel insurance claim for cancelled international trip due to illness"},
}

// Seed validates and loads the sample datasets into the store. It is an
// upsert, so calling it twice resets the seeded records but keeps claims
// added at runtime.
func Seed(st storex.Store) error {
	for _, u := range seedUsers {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("seed user %s: %w", u.UserID, err)
		}
		st.Put(NamespaceUsers, u.UserID, u)
	}
	for _, p := range seedPolicies {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("seed policy %s: %w", p.PolicyID, err)
		}
		st.Put(NamespacePolicies, p.PolicyID, p)
	}
	for _, c := range seedClaims {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("seed claim %s: %w", c.ClaimID, err)
		}
		st.Put(NamespaceClaims, c.ClaimID, c)
	}
	return nil
}
