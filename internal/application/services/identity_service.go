package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// inviteGrant is the number of invites issued on successful verification
const inviteGrant = 5

// validInviteCodes are the codes the invite gate accepts
var validInviteCodes = map[string]struct{}{
	"HONEST-1":   {},
	"COLLEGE-24": {},
	"TRUTH-5":    {},
}

// VerificationResult is the outcome of matching an email against the
// directory. Matched is false for NoMatch; the other fields are then
// zero values.
type VerificationResult struct {
	Matched      bool                  `json:"matched"`
	Organization entities.Organization `json:"organization,omitempty"`
	RoleLabel    string                `json:"role_label,omitempty"`
}

// IdentityService owns the local user session and the email-domain
// verification flow
type IdentityService struct {
	store     providers.KVStore
	bus       providers.EventBus
	directory *DirectoryService
}

// NewIdentityService creates a new identity service
func NewIdentityService(store providers.KVStore, bus providers.EventBus, directory *DirectoryService) *IdentityService {
	return &IdentityService{
		store:     store,
		bus:       bus,
		directory: directory,
	}
}

// GetSession returns the persisted user session, defaulting to an
// unverified session when nothing is stored or the stored value is
// corrupt
func (s *IdentityService) GetSession(ctx context.Context) entities.UserSession {
	data, err := s.store.Get(ctx, providers.KeyUserSession)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to read user session")
		}
		return entities.UserSession{}
	}
	var session entities.UserSession
	if err := json.Unmarshal(data, &session); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("stored session corrupt, using default")
		return entities.UserSession{}
	}
	return session
}

// UpdateSession shallow-merges the patch into the persisted session and
// broadcasts the change
func (s *IdentityService) UpdateSession(ctx context.Context, patch entities.UserSessionPatch) error {
	session := s.GetSession(ctx)
	patch.Apply(&session)

	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewInternalError("failed to encode user session", err)
	}
	if err := s.store.Set(ctx, providers.KeyUserSession, data); err != nil {
		return apperrors.NewInternalError("failed to persist user session", err)
	}
	notifyDataChanged(ctx, s.bus, providers.KeyUserSession)
	return nil
}

// VerifyEmail classifies an email into an organization and role by domain
// matching. Kinds are searched in the fixed order company, college,
// school, gov; the first kind that yields any match wins. On a match the
// session becomes verified and invites are granted; NoMatch leaves the
// session untouched.
//
// The company match is a deliberate bidirectional substring test carried
// over from the original product behavior; do not tighten it without a
// product decision.
func (s *IdentityService) VerifyEmail(ctx context.Context, email string) (*VerificationResult, error) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return nil, apperrors.NewValidationError("email must contain a domain part")
	}
	domain := strings.ToLower(email[at+1:])

	match := s.matchDomain(ctx, domain)
	if match == nil {
		return &VerificationResult{Matched: false}, nil
	}

	verified := true
	patch := entities.UserSessionPatch{
		IsVerified:       &verified,
		VerifiedEntityID: &match.ID,
		VerifiedEmail:    &email,
		InvitesRemaining: intRef(inviteGrant),
	}
	if err := s.UpdateSession(ctx, patch); err != nil {
		return nil, err
	}

	return &VerificationResult{
		Matched:      true,
		Organization: *match,
		RoleLabel:    match.Kind.RoleLabel(),
	}, nil
}

func (s *IdentityService) matchDomain(ctx context.Context, domain string) *entities.Organization {
	for _, c := range s.directory.ListCompanies(ctx) {
		registered := strings.ToLower(c.Domain)
		if registered == "" {
			continue
		}
		if strings.Contains(registered, domain) || strings.Contains(domain, registered) {
			org := c.AsOrganization()
			return &org
		}
	}

	for _, kind := range []entities.OrgKind{entities.OrgKindCollege, entities.OrgKindSchool, entities.OrgKindGovOrg} {
		orgs, err := s.directory.ListOrganizations(ctx, kind)
		if err != nil {
			continue
		}
		for i := range orgs {
			for _, allowed := range orgs[i].EmailDomains {
				if allowed != "" && strings.Contains(domain, strings.ToLower(allowed)) {
					return &orgs[i]
				}
			}
		}
	}
	return nil
}

// ValidateInviteCode reports whether the code is one of the accepted
// invite codes
func (s *IdentityService) ValidateInviteCode(code string) bool {
	_, ok := validInviteCodes[code]
	return ok
}

func intRef(v int) *int {
	return &v
}
