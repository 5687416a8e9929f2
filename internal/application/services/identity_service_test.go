package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/events"
	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

func newIdentityService() (*services.IdentityService, *services.DirectoryService, providers.KVStore) {
	store := kv.NewMemoryStore()
	bus := events.NewMemoryEventBus()
	directory := services.NewDirectoryService(store, bus, nil)
	return services.NewIdentityService(store, bus, directory), directory, store
}

func TestIdentityService_GetSession_DefaultsWhenMissingOrCorrupt(t *testing.T) {
	svc, _, store := newIdentityService()
	ctx := context.Background()

	session := svc.GetSession(ctx)
	assert.False(t, session.IsVerified)
	assert.Zero(t, session.InvitesRemaining)

	require.NoError(t, store.Set(ctx, providers.KeyUserSession, []byte("garbage")))
	session = svc.GetSession(ctx)
	assert.False(t, session.IsVerified, "corrupt session must degrade to the default")
}

func TestIdentityService_UpdateSession_MergesPatch(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	email := "jane@stripe.com"
	require.NoError(t, svc.UpdateSession(ctx, entities.UserSessionPatch{VerifiedEmail: &email}))

	verified := true
	require.NoError(t, svc.UpdateSession(ctx, entities.UserSessionPatch{IsVerified: &verified}))

	session := svc.GetSession(ctx)
	assert.True(t, session.IsVerified)
	assert.Equal(t, email, session.VerifiedEmail, "untouched fields survive later patches")
}

func TestIdentityService_VerifyEmail_CompanyMatch(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	result, err := svc.VerifyEmail(ctx, "jane@stripe.com")
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "3", result.Organization.ID)
	assert.Equal(t, "Employee", result.RoleLabel)

	session := svc.GetSession(ctx)
	assert.True(t, session.IsVerified)
	assert.Equal(t, "3", session.VerifiedEntityID)
	assert.Equal(t, "jane@stripe.com", session.VerifiedEmail)
	assert.Equal(t, 5, session.InvitesRemaining)
}

func TestIdentityService_VerifyEmail_CollegeMatch(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	result, err := svc.VerifyEmail(ctx, "student@mit.edu")
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "c1", result.Organization.ID)
	assert.Equal(t, "Student/Alumni", result.RoleLabel)
}

func TestIdentityService_VerifyEmail_SubdomainMatchesAllowedDomain(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	// Allowed domains match by containment, so department subdomains pass.
	result, err := svc.VerifyEmail(ctx, "prof@cs.mit.edu")
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "c1", result.Organization.ID)
}

func TestIdentityService_VerifyEmail_GovMatch(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	result, err := svc.VerifyEmail(ctx, "officer@sbi.co.in")
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "g1", result.Organization.ID)
	assert.Equal(t, "Official", result.RoleLabel)
}

func TestIdentityService_VerifyEmail_NoMatchLeavesSessionUntouched(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	result, err := svc.VerifyEmail(ctx, "someone@unknown.org")
	require.NoError(t, err)
	assert.False(t, result.Matched)

	session := svc.GetSession(ctx)
	assert.False(t, session.IsVerified)
	assert.Empty(t, session.VerifiedEntityID)
	assert.Zero(t, session.InvitesRemaining)
}

func TestIdentityService_VerifyEmail_RejectsMalformedEmail(t *testing.T) {
	svc, _, _ := newIdentityService()
	ctx := context.Background()

	for _, email := range []string{"", "no-at-sign", "trailing@"} {
		_, err := svc.VerifyEmail(ctx, email)
		require.Error(t, err, "email %q", email)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
}

func TestIdentityService_VerifyEmail_MatchesUserAddedCollege(t *testing.T) {
	svc, directory, _ := newIdentityService()
	ctx := context.Background()

	college, err := directory.AddCollege(ctx, services.AddCollegeInput{
		Name:    "Test U",
		Website: "https://www.testu.edu",
	})
	require.NoError(t, err)

	result, err := svc.VerifyEmail(ctx, "jane@testu.edu")
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, college.ID, result.Organization.ID)
	assert.Equal(t, "Student/Alumni", result.RoleLabel)
}

func TestIdentityService_ValidateInviteCode(t *testing.T) {
	svc, _, _ := newIdentityService()

	assert.True(t, svc.ValidateInviteCode("HONEST-1"))
	assert.True(t, svc.ValidateInviteCode("COLLEGE-24"))
	assert.True(t, svc.ValidateInviteCode("TRUTH-5"))
	assert.False(t, svc.ValidateInviteCode("honest-1"))
	assert.False(t, svc.ValidateInviteCode(""))
}
