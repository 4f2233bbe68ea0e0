package insurance

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
	storex "github.com/bpeddi/simple-ai-agent/agent/store"
)

// SystemDateLayout is the textual timestamp format used for claim
// timestamps and the system-date tool.
const SystemDateLayout = "2006-01-02T15:04:05.000000"

// Service implements the insurance domain operations over an explicitly
// passed record store.
type Service struct {
	store   storex.Store
	now     func() time.Time
	claimID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithClaimIDGenerator overrides claim-id generation.
func WithClaimIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.claimID = gen
		}
	}
}

func NewService(st storex.Store, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("record store is required")
	}
	s := &Service{
		store:   st,
		now:     time.Now,
		claimID: newClaimID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// CurrentSystemDate returns the current timestamp as a formatted string.
func (s *Service) CurrentSystemDate() string {
	return s.now().Format(SystemDateLayout)
}

// newClaimID is "c" plus a random 8-hex-char suffix, matching the seeded
// id shape. There is no collision check against existing keys; the risk
// is accepted.
func newClaimID() string {
	id := uuid.New()
	return "c" + hex.EncodeToString(id[:4])
}

/* ------------------------------ store access ----------------------------- */

func (s *Service) user(id string) (User, bool, error) {
	v, ok := s.store.Get(NamespaceUsers, id)
	if !ok {
		return User{}, false, nil
	}
	u, ok := v.(User)
	if !ok {
		return User{}, false, fmt.Errorf("%w: record %s/%s has unexpected type %T", contractx.ErrInternal, NamespaceUsers, id, v)
	}
	return u, true, nil
}

func (s *Service) policy(id string) (Policy, bool, error) {
	v, ok := s.store.Get(NamespacePolicies, id)
	if !ok {
		return Policy{}, false, nil
	}
	p, ok := v.(Policy)
	if !ok {
		return Policy{}, false, fmt.Errorf("%w: record %s/%s has unexpected type %T", contractx.ErrInternal, NamespacePolicies, id, v)
	}
	return p, true, nil
}

func (s *Service) claim(id string) (Claim, bool, error) {
	v, ok := s.store.Get(NamespaceClaims, id)
	if !ok {
		return Claim{}, false, nil
	}
	c, ok := v.(Claim)
	if !ok {
		return Claim{}, false, fmt.Errorf("%w: record %s/%s has unexpected type %T", contractx.ErrInternal, NamespaceClaims, id, v)
	}
	return c, true, nil
}

// scanClaims returns every claim whose fields pass the filter, with the
// store key injected as the claim id.
func (s *Service) scanClaims(keep func(Claim) bool) ([]Claim, error) {
	entries := s.store.Scan(NamespaceClaims)
	claims := make([]Claim, 0, len(entries))
	for _, e := range entries {
		c, ok := e.Value.(Claim)
		if !ok {
			return nil, fmt.Errorf("%w: record %s/%s has unexpected type %T", contractx.ErrInternal, NamespaceClaims, e.Key, e.Value)
		}
		c.ClaimID = e.Key
		if keep == nil || keep(c) {
			claims = append(claims, c)
		}
	}
	return claims, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
