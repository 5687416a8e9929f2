package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	"github.com/Aryan9369/HonestWork/internal/seed"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

var websiteSchemeRe = regexp.MustCompile(`^https?://(www\.)?`)

// NormalizeWebsiteDomain derives a bare hostname from a user-supplied
// website string: strip scheme and "www.", cut at the first slash,
// lower-case.
func NormalizeWebsiteDomain(website string) string {
	domain := websiteSchemeRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(website)), "")
	if idx := strings.Index(domain, "/"); idx >= 0 {
		domain = domain[:idx]
	}
	return domain
}

// DirectoryService is the entity store: CRUD over the four organization
// kinds, merging the immutable seed catalog with user-added records.
// Duplicate names and domains are permitted; the catalog performs no
// dedupe.
type DirectoryService struct {
	store providers.KVStore
	bus   providers.EventBus
	index providers.SearchIndex // optional
}

// NewDirectoryService creates a new directory service. index may be nil.
func NewDirectoryService(store providers.KVStore, bus providers.EventBus, index providers.SearchIndex) *DirectoryService {
	return &DirectoryService{
		store: store,
		bus:   bus,
		index: index,
	}
}

// ListCompanies returns seed companies followed by user-added ones in
// insertion order
func (s *DirectoryService) ListCompanies(ctx context.Context) []entities.Company {
	return append(seed.Companies(), readList[entities.Company](ctx, s.store, providers.KeyCustomCompanies)...)
}

// ListColleges returns seed colleges followed by user-added ones
func (s *DirectoryService) ListColleges(ctx context.Context) []entities.College {
	return append(seed.Colleges(), readList[entities.College](ctx, s.store, providers.KeyCustomColleges)...)
}

// ListSchools returns seed schools followed by user-added ones
func (s *DirectoryService) ListSchools(ctx context.Context) []entities.School {
	return append(seed.Schools(), readList[entities.School](ctx, s.store, providers.KeyCustomSchools)...)
}

// ListGovOrgs returns seed government orgs followed by user-added ones
func (s *DirectoryService) ListGovOrgs(ctx context.Context) []entities.GovOrg {
	return append(seed.GovOrgs(), readList[entities.GovOrg](ctx, s.store, providers.KeyCustomGovOrgs)...)
}

// ListOrganizations returns the kind-agnostic view of one catalog
func (s *DirectoryService) ListOrganizations(ctx context.Context, kind entities.OrgKind) ([]entities.Organization, error) {
	switch kind {
	case entities.OrgKindCompany:
		companies := s.ListCompanies(ctx)
		out := make([]entities.Organization, 0, len(companies))
		for i := range companies {
			out = append(out, companies[i].AsOrganization())
		}
		return out, nil
	case entities.OrgKindCollege:
		colleges := s.ListColleges(ctx)
		out := make([]entities.Organization, 0, len(colleges))
		for i := range colleges {
			out = append(out, colleges[i].AsOrganization())
		}
		return out, nil
	case entities.OrgKindSchool:
		schools := s.ListSchools(ctx)
		out := make([]entities.Organization, 0, len(schools))
		for i := range schools {
			out = append(out, schools[i].AsOrganization())
		}
		return out, nil
	case entities.OrgKindGovOrg:
		orgs := s.ListGovOrgs(ctx)
		out := make([]entities.Organization, 0, len(orgs))
		for i := range orgs {
			out = append(out, orgs[i].AsOrganization())
		}
		return out, nil
	}
	return nil, apperrors.NewValidationError("unknown organization kind: " + string(kind))
}

// GetCompany looks up a company by id
func (s *DirectoryService) GetCompany(ctx context.Context, id string) (*entities.Company, error) {
	for _, c := range s.ListCompanies(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("company not found: " + id)
}

// GetCollege looks up a college by id
func (s *DirectoryService) GetCollege(ctx context.Context, id string) (*entities.College, error) {
	for _, c := range s.ListColleges(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("college not found: " + id)
}

// GetSchool looks up a school by id
func (s *DirectoryService) GetSchool(ctx context.Context, id string) (*entities.School, error) {
	for _, sc := range s.ListSchools(ctx) {
		if sc.ID == id {
			return &sc, nil
		}
	}
	return nil, apperrors.NewNotFoundError("school not found: " + id)
}

// GetGovOrg looks up a government org by id
func (s *DirectoryService) GetGovOrg(ctx context.Context, id string) (*entities.GovOrg, error) {
	for _, g := range s.ListGovOrgs(ctx) {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, apperrors.NewNotFoundError("gov org not found: " + id)
}

// GetOrganization looks up the kind-agnostic view of one record
func (s *DirectoryService) GetOrganization(ctx context.Context, kind entities.OrgKind, id string) (*entities.Organization, error) {
	orgs, err := s.ListOrganizations(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range orgs {
		if orgs[i].ID == id {
			return &orgs[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("organization not found: " + id)
}

// ResolveOrganization finds a record of any kind by id, trying kinds in
// the fixed order company, college, school, gov. Relies on ids being
// unique across all four catalogs combined.
func (s *DirectoryService) ResolveOrganization(ctx context.Context, id string) (*entities.Organization, error) {
	for _, kind := range entities.AllOrgKinds {
		org, err := s.GetOrganization(ctx, kind, id)
		if err == nil {
			return org, nil
		}
		if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, err
		}
	}
	return nil, apperrors.NewNotFoundError("organization not found in any catalog: " + id)
}

// AddCompanyInput carries a new company submission
type AddCompanyInput struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// AddCompany appends a user-added company to the persisted catalog
func (s *DirectoryService) AddCompany(ctx context.Context, input AddCompanyInput) (*entities.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("company name is required")
	}
	company := entities.Company{
		ID:          entities.NewOrgID(entities.OrgKindCompany),
		Name:        input.Name,
		Domain:      strings.ToLower(strings.TrimSpace(input.Domain)),
		Industry:    input.Industry,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}
	if company.LogoURL == "" {
		company.LogoURL = entities.PlaceholderLogoURL(company.Name)
	}
	if err := appendToList(ctx, s.store, providers.KeyCustomCompanies, company); err != nil {
		return nil, err
	}
	s.indexOrganization(ctx, company.AsOrganization())
	notifyDataChanged(ctx, s.bus, providers.KeyCustomCompanies)
	return &company, nil
}

// AddCollegeInput carries a new college submission
type AddCollegeInput struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Website     string `json:"website"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// AddCollege appends a user-added college, deriving its allowed email
// domain from the website
func (s *DirectoryService) AddCollege(ctx context.Context, input AddCollegeInput) (*entities.College, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("college name is required")
	}
	college := entities.College{
		ID:                  entities.NewOrgID(entities.OrgKindCollege),
		Name:                input.Name,
		City:                input.City,
		State:               input.State,
		Website:             input.Website,
		Description:         input.Description,
		LogoURL:             input.LogoURL,
		AllowedEmailDomains: []string{NormalizeWebsiteDomain(input.Website)},
	}
	if college.LogoURL == "" {
		college.LogoURL = entities.PlaceholderLogoURL(college.Name)
	}
	if err := appendToList(ctx, s.store, providers.KeyCustomColleges, college); err != nil {
		return nil, err
	}
	s.indexOrganization(ctx, college.AsOrganization())
	notifyDataChanged(ctx, s.bus, providers.KeyCustomColleges)
	return &college, nil
}

// AddSchoolInput carries a new school submission
type AddSchoolInput struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Board       string `json:"board"`
	Website     string `json:"website"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// AddSchool appends a user-added school, deriving its allowed email
// domain from the website
func (s *DirectoryService) AddSchool(ctx context.Context, input AddSchoolInput) (*entities.School, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("school name is required")
	}
	school := entities.School{
		ID:                  entities.NewOrgID(entities.OrgKindSchool),
		Name:                input.Name,
		City:                input.City,
		State:               input.State,
		Board:               input.Board,
		Website:             input.Website,
		Description:         input.Description,
		LogoURL:             input.LogoURL,
		AllowedEmailDomains: []string{NormalizeWebsiteDomain(input.Website)},
	}
	if school.LogoURL == "" {
		school.LogoURL = entities.PlaceholderLogoURL(school.Name)
	}
	if err := appendToList(ctx, s.store, providers.KeyCustomSchools, school); err != nil {
		return nil, err
	}
	s.indexOrganization(ctx, school.AsOrganization())
	notifyDataChanged(ctx, s.bus, providers.KeyCustomSchools)
	return &school, nil
}

// AddGovOrgInput carries a new government organization submission
type AddGovOrgInput struct {
	Name        string             `json:"name"`
	Type        entities.GovOrgType `json:"type"`
	Website     string             `json:"website"`
	Description string             `json:"description"`
	LogoURL     string             `json:"logo_url"`
}

// AddGovOrg appends a user-added government org, deriving its allowed
// email domain from the website
func (s *DirectoryService) AddGovOrg(ctx context.Context, input AddGovOrgInput) (*entities.GovOrg, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("organization name is required")
	}
	org := entities.GovOrg{
		ID:                  entities.NewOrgID(entities.OrgKindGovOrg),
		Name:                input.Name,
		Type:                input.Type,
		Website:             input.Website,
		Description:         input.Description,
		LogoURL:             input.LogoURL,
		AllowedEmailDomains: []string{NormalizeWebsiteDomain(input.Website)},
	}
	if org.Type == "" {
		org.Type = entities.GovOrgTypeOther
	}
	if org.LogoURL == "" {
		org.LogoURL = entities.PlaceholderLogoURL(org.Name)
	}
	if err := appendToList(ctx, s.store, providers.KeyCustomGovOrgs, org); err != nil {
		return nil, err
	}
	s.indexOrganization(ctx, org.AsOrganization())
	notifyDataChanged(ctx, s.bus, providers.KeyCustomGovOrgs)
	return &org, nil
}

// SearchOrganizations returns organizations whose names match the query.
// With a search index configured the index ranks results; otherwise a
// case-insensitive substring scan over all catalogs serves.
func (s *DirectoryService) SearchOrganizations(ctx context.Context, query string) []entities.Organization {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if s.index != nil {
		ids, err := s.index.Search(ctx, query, 20)
		if err == nil {
			out := make([]entities.Organization, 0, len(ids))
			for _, id := range ids {
				if org, err := s.ResolveOrganization(ctx, id); err == nil {
					out = append(out, *org)
				}
			}
			return out
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("search index unavailable, falling back to scan")
	}

	lowered := strings.ToLower(query)
	var out []entities.Organization
	for _, kind := range entities.AllOrgKinds {
		orgs, err := s.ListOrganizations(ctx, kind)
		if err != nil {
			continue
		}
		for _, org := range orgs {
			if strings.Contains(strings.ToLower(org.Name), lowered) {
				out = append(out, org)
			}
		}
	}
	return out
}

// indexOrganization upserts a record into the optional search index.
// Index failures never fail the write that triggered them.
func (s *DirectoryService) indexOrganization(ctx context.Context, org entities.Organization) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, org); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("org_id", org.ID).Msg("failed to index organization")
	}
}
