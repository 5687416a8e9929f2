package entities

// UserSession is the single local identity of this profile. It denotes
// "this profile claims affiliation with organization X", not a server-side
// account.
type UserSession struct {
	IsVerified       bool   `json:"is_verified"`
	VerifiedEntityID string `json:"verified_entity_id,omitempty"`
	VerifiedEmail    string `json:"verified_email,omitempty"`
	InvitesRemaining int    `json:"invites_remaining"`
}

// UserSessionPatch carries a partial session update. Nil fields are left
// untouched (shallow-merge semantics).
type UserSessionPatch struct {
	IsVerified       *bool   `json:"is_verified,omitempty"`
	VerifiedEntityID *string `json:"verified_entity_id,omitempty"`
	VerifiedEmail    *string `json:"verified_email,omitempty"`
	InvitesRemaining *int    `json:"invites_remaining,omitempty"`
}

// Apply merges the patch into the session
func (p *UserSessionPatch) Apply(s *UserSession) {
	if p.IsVerified != nil {
		s.IsVerified = *p.IsVerified
	}
	if p.VerifiedEntityID != nil {
		s.VerifiedEntityID = *p.VerifiedEntityID
	}
	if p.VerifiedEmail != nil {
		s.VerifiedEmail = *p.VerifiedEmail
	}
	if p.InvitesRemaining != nil {
		s.InvitesRemaining = *p.InvitesRemaining
	}
}
