package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

func TestNewOrgID_PrefixPerKind(t *testing.T) {
	prefixes := map[entities.OrgKind]string{
		entities.OrgKindCompany: "custom-comp-",
		entities.OrgKindCollege: "custom-coll-",
		entities.OrgKindSchool:  "custom-school-",
		entities.OrgKindGovOrg:  "custom-gov-",
	}

	for kind, prefix := range prefixes {
		id := entities.NewOrgID(kind)
		assert.True(t, strings.HasPrefix(id, prefix), "kind %s produced %q", kind, id)
		assert.Len(t, strings.TrimPrefix(id, prefix), 9)
	}
}

func TestNewOrgID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := entities.NewOrgID(entities.OrgKindCompany)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func TestRoleLabelPerKind(t *testing.T) {
	assert.Equal(t, "Employee", entities.OrgKindCompany.RoleLabel())
	assert.Equal(t, "Student/Alumni", entities.OrgKindCollege.RoleLabel())
	assert.Equal(t, "Teacher/Student/Parent", entities.OrgKindSchool.RoleLabel())
	assert.Equal(t, "Official", entities.OrgKindGovOrg.RoleLabel())
}

func TestAsOrganization_CarriesEmailDomains(t *testing.T) {
	college := entities.College{
		ID:                  "c9",
		Name:                "Test U",
		AllowedEmailDomains: []string{"testu.edu"},
	}
	org := college.AsOrganization()
	assert.Equal(t, entities.OrgKindCollege, org.Kind)
	assert.Equal(t, []string{"testu.edu"}, org.EmailDomains)

	company := entities.Company{ID: "x", Name: "Acme", Domain: "acme.io"}
	assert.Equal(t, []string{"acme.io"}, company.AsOrganization().EmailDomains)
}

func TestQuestionClone_IsDeep(t *testing.T) {
	q := entities.Question{
		ID:      "q1",
		Answers: []entities.Answer{{ID: "a1", Text: "original"}},
	}
	clone := q.Clone()
	clone.Answers[0].Text = "mutated"
	clone.Answers = append(clone.Answers, entities.Answer{ID: "a2"})

	assert.Equal(t, "original", q.Answers[0].Text)
	assert.Len(t, q.Answers, 1)
}
