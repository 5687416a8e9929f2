package entities

import (
	"crypto/rand"
	"encoding/hex"
)

// OrgKind identifies which of the four organization catalogs a record
// belongs to.
type OrgKind string

const (
	OrgKindCompany OrgKind = "company"
	OrgKindCollege OrgKind = "college"
	OrgKindSchool  OrgKind = "school"
	OrgKindGovOrg  OrgKind = "gov"
)

// AllOrgKinds lists the kinds in resolution order. Cross-kind id lookups
// try each kind in this order and return the first match.
var AllOrgKinds = []OrgKind{OrgKindCompany, OrgKindCollege, OrgKindSchool, OrgKindGovOrg}

// IDPrefix returns the prefix used for ids of user-added records of this kind.
func (k OrgKind) IDPrefix() string {
	switch k {
	case OrgKindCompany:
		return "custom-comp"
	case OrgKindCollege:
		return "custom-coll"
	case OrgKindSchool:
		return "custom-school"
	case OrgKindGovOrg:
		return "custom-gov"
	}
	return "custom"
}

// RoleLabel returns the affiliation label granted when an email is
// verified against an organization of this kind.
func (k OrgKind) RoleLabel() string {
	switch k {
	case OrgKindCompany:
		return "Employee"
	case OrgKindCollege:
		return "Student/Alumni"
	case OrgKindSchool:
		return "Teacher/Student/Parent"
	case OrgKindGovOrg:
		return "Official"
	}
	return ""
}

// Company represents a commercial employer
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// College represents a higher-education institution
type College struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	Website             string   `json:"website"`
	Description         string   `json:"description"`
	LogoURL             string   `json:"logo_url"`
	AllowedEmailDomains []string `json:"allowed_email_domains"`
}

// School represents a primary or secondary school
type School struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	Board               string   `json:"board"` // CBSE, ICSE, IB, State
	Website             string   `json:"website"`
	Description         string   `json:"description"`
	LogoURL             string   `json:"logo_url"`
	AllowedEmailDomains []string `json:"allowed_email_domains"`
}

// GovOrgType classifies a government organization
type GovOrgType string

const (
	GovOrgTypePSU      GovOrgType = "PSU"
	GovOrgTypeMinistry GovOrgType = "Ministry"
	GovOrgTypeBank     GovOrgType = "Bank"
	GovOrgTypeDefense  GovOrgType = "Defense"
	GovOrgTypeOther    GovOrgType = "Other"
)

// GovOrg represents a government body
type GovOrg struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                GovOrgType `json:"type"`
	Website             string     `json:"website"`
	Description         string     `json:"description"`
	LogoURL             string     `json:"logo_url"`
	AllowedEmailDomains []string   `json:"allowed_email_domains"`
}

// Organization is the kind-agnostic projection of any of the four record
// types. Content records reference organizations through this view, so its
// ids must be unique across all kinds combined.
type Organization struct {
	Kind         OrgKind  `json:"kind"`
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	LogoURL      string   `json:"logo_url"`
	EmailDomains []string `json:"email_domains"`
}

// AsOrganization returns the kind-agnostic view of the company
func (c *Company) AsOrganization() Organization {
	return Organization{
		Kind:         OrgKindCompany,
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		LogoURL:      c.LogoURL,
		EmailDomains: []string{c.Domain},
	}
}

// AsOrganization returns the kind-agnostic view of the college
func (c *College) AsOrganization() Organization {
	return Organization{
		Kind:         OrgKindCollege,
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		LogoURL:      c.LogoURL,
		EmailDomains: c.AllowedEmailDomains,
	}
}

// AsOrganization returns the kind-agnostic view of the school
func (s *School) AsOrganization() Organization {
	return Organization{
		Kind:         OrgKindSchool,
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		LogoURL:      s.LogoURL,
		EmailDomains: s.AllowedEmailDomains,
	}
}

// AsOrganization returns the kind-agnostic view of the government org
func (g *GovOrg) AsOrganization() Organization {
	return Organization{
		Kind:         OrgKindGovOrg,
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		LogoURL:      g.LogoURL,
		EmailDomains: g.AllowedEmailDomains,
	}
}

// NewOrgID generates a fresh id for a user-added record of the given kind
func NewOrgID(kind OrgKind) string {
	return kind.IDPrefix() + "-" + randomToken(9)
}

// randomToken generates a random lowercase hex string of specified length
func randomToken(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return "fallback0"
	}
	return hex.EncodeToString(bytes)[:length]
}

// PlaceholderLogoURL returns a deterministic placeholder image keyed by name
func PlaceholderLogoURL(name string) string {
	return "https://picsum.photos/seed/" + name + "/200"
}
