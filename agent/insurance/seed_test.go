package insurance

import (
	"testing"

	storex "github.com/bpeddi/simple-ai-agent/agent/store"
)

func TestSeedLoadsAllRecords(t *testing.T) {
	t.Parallel()

	st := storex.NewMemory()
	if err := Seed(st); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if got := len(st.Scan(NamespaceUsers)); got != 8 {
		t.Fatalf("users = %d, want 8", got)
	}
	if got := len(st.Scan(NamespacePolicies)); got != 12 {
		t.Fatalf("policies = %d, want 12", got)
	}
	if got := len(st.Scan(NamespaceClaims)); got != 10 {
		t.Fatalf("claims = %d, want 10", got)
	}
}

func TestSeedPrimaryPolicyLinks(t *testing.T) {
	t.Parallel()

	st := storex.NewMemory()
	if err := Seed(st); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	for _, e := range st.Scan(NamespaceUsers) {
		u, ok := e.Value.(User)
		if !ok {
			t.Fatalf("user %s has unexpected type %T", e.Key, e.Value)
		}
		if u.PolicyID == "" {
			t.Fatalf("user %s has no primary policy", u.UserID)
		}
		v, ok := st.Get(NamespacePolicies, u.PolicyID)
		if !ok {
			t.Fatalf("user %s links missing policy %s", u.UserID, u.PolicyID)
		}
		p := v.(Policy)
		if p.UserID != u.UserID {
			t.Fatalf("policy %s belongs to %s, linked from %s", p.PolicyID, p.UserID, u.UserID)
		}
	}
}

func TestSeedClaimsReferenceSeededRecords(t *testing.T) {
	t.Parallel()

	st := storex.NewMemory()
	if err := Seed(st); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	for _, e := range st.Scan(NamespaceClaims) {
		c, ok := e.Value.(Claim)
		if !ok {
			t.Fatalf("claim %s has unexpected type %T", e.Key, e.Value)
		}
		if _, ok := st.Get(NamespaceUsers, c.UserID); !ok {
			t.Fatalf("claim %s references missing user %s", c.ClaimID, c.UserID)
		}
		if _, ok := st.Get(NamespacePolicies, c.PolicyID); !ok {
			t.Fatalf("claim %s references missing policy %s", c.ClaimID, c.PolicyID)
		}
		if _, err := ParseClaimStatus(string(c.Status)); err != nil {
			t.Fatalf("claim %s has invalid status: %v", c.ClaimID, err)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	st := storex.NewMemory()
	if err := Seed(st); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := Seed(st); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if got := len(st.Scan(NamespaceUsers)); got != 8 {
		t.Fatalf("users after reseed = %d, want 8", got)
	}
}
