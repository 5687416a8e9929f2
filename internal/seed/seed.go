// Package seed holds the immutable starting catalog. Seed records exist at
// process start and are never mutated in place; user writes always land in
// the persisted overlay and reads merge the two layers.
package seed

import (
	"time"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func intPtr(v int) *int {
	return &v
}

// Companies returns the seed company catalog
func Companies() []entities.Company {
	return []entities.Company{
		{
			ID:          "1",
			Name:        "Google",
			Domain:      "google.com",
			Industry:    "Technology",
			Description: "A global leader in search, advertising, and cloud computing.",
			LogoURL:     "https://picsum.photos/seed/google/200",
		},
		{
			ID:          "2",
			Name:        "Apple",
			Domain:      "apple.com",
			Industry:    "Technology",
			Description: "Pioneering consumer electronics, software, and services.",
			LogoURL:     "https://picsum.photos/seed/apple/200",
		},
		{
			ID:          "3",
			Name:        "Stripe",
			Domain:      "stripe.com",
			Industry:    "Fintech",
			Description: "Financial infrastructure for the internet.",
			LogoURL:     "https://picsum.photos/seed/stripe/200",
		},
		{
			ID:          "7",
			Name:        "Zomato",
			Domain:      "zomato.com",
			Industry:    "Food Tech",
			Description: "Indian multinational restaurant aggregator and food delivery company.",
			LogoURL:     "https://picsum.photos/seed/zomato/200",
		},
	}
}

// Colleges returns the seed college catalog
func Colleges() []entities.College {
	return []entities.College{
		{
			ID:                  "c1",
			Name:                "MIT",
			City:                "Cambridge",
			State:               "MA",
			Website:             "mit.edu",
			AllowedEmailDomains: []string{"mit.edu"},
			Description:         "A world-class research university focused on science and technology.",
			LogoURL:             "https://picsum.photos/seed/mit/200",
		},
		{
			ID:                  "c4",
			Name:                "IIT Bombay",
			City:                "Mumbai",
			State:               "Maharashtra",
			Website:             "iitb.ac.in",
			AllowedEmailDomains: []string{"iitb.ac.in"},
			Description:         "Recognized worldwide as a leader in the field of engineering education and research.",
			LogoURL:             "https://picsum.photos/seed/iitb/200",
		},
	}
}

// Schools returns the seed school catalog
func Schools() []entities.School {
	return []entities.School{
		{
			ID:                  "s1",
			Name:                "Delhi Public School, RK Puram",
			City:                "New Delhi",
			State:               "Delhi",
			Board:               "CBSE",
			Website:             "dpsrkp.net",
			AllowedEmailDomains: []string{"dpsrkp.net"},
			Description:         "A premier co-educational day-cum-boarding school in India.",
			LogoURL:             "https://picsum.photos/seed/dps/200",
		},
		{
			ID:                  "s2",
			Name:                "The Doon School",
			City:                "Dehradun",
			State:               "Uttarakhand",
			Board:               "IB/ISC",
			Website:             "doonschool.com",
			AllowedEmailDomains: []string{"doonschool.com"},
			Description:         "An all-boys boarding school specializing in holistic education.",
			LogoURL:             "https://picsum.photos/seed/doon/200",
		},
	}
}

// GovOrgs returns the seed government organization catalog
func GovOrgs() []entities.GovOrg {
	return []entities.GovOrg{
		{
			ID:                  "g1",
			Name:                "State Bank of India",
			Type:                entities.GovOrgTypeBank,
			Website:             "sbi.co.in",
			AllowedEmailDomains: []string{"sbi.co.in"},
			Description:         "The largest public sector bank in India.",
			LogoURL:             "https://picsum.photos/seed/sbi/200",
		},
		{
			ID:                  "g2",
			Name:                "ISRO",
			Type:                entities.GovOrgTypeMinistry,
			Website:             "isro.gov.in",
			AllowedEmailDomains: []string{"isro.gov.in"},
			Description:         "Indian Space Research Organisation.",
			LogoURL:             "https://picsum.photos/seed/isro/200",
		},
	}
}

// Reviews returns the seed reviews across all organization kinds
func Reviews() []entities.Review {
	return []entities.Review{
		{
			ID:           "r1",
			EntityID:     "1",
			Rating:       4,
			Department:   entities.DepartmentEngineering,
			Title:        "Great perks, slow processes",
			Pros:         "The food and benefits are unmatched. Amazing colleagues.",
			Cons:         "Bureaucracy can be stifling for fast movers.",
			Advice:       "Try to cut down on middle management layers.",
			AuthorEmail:  "dev@google.com",
			IsVerified:   true,
			IsAnonymous:  true,
			CreatedAt:    date("2024-03-01"),
			HelpfulVotes: 12,
		},
		{
			ID:                   "cr1",
			EntityID:             "c1",
			Rating:               5,
			Department:           entities.DepartmentCompSci,
			Title:                "Intense but rewarding",
			Pros:                 "Incredible research opportunities and peers.",
			Cons:                 "Very high workload, little sleep.",
			Advice:               "Find a study group early.",
			AuthorEmail:          "student@mit.edu",
			IsVerified:           true,
			IsAnonymous:          true,
			CreatedAt:            date("2024-01-20"),
			PlacementRating:      intPtr(5),
			MessRating:           intPtr(3),
			WifiRating:           intPtr(5),
			InfrastructureRating: intPtr(5),
			StrictnessRating:     intPtr(3),
			BatchYear:            "2025",
			HelpfulVotes:         8,
		},
		{
			ID:                       "sr1",
			EntityID:                 "s1",
			Rating:                   4,
			Department:               entities.DepartmentTeaching,
			Title:                    "Excellent academic environment",
			Pros:                     "Smart students, good facilities.",
			Cons:                     "High pressure on teachers for results.",
			Advice:                   "Focus more on teacher well-being.",
			AuthorEmail:              "teacher@dpsrkp.net",
			IsVerified:               true,
			IsAnonymous:              true,
			CreatedAt:                date("2024-02-10"),
			TeachersRating:           intPtr(5),
			SafetyRating:             intPtr(4),
			SportsRating:             intPtr(5),
			ParentsInteractionRating: intPtr(3),
			HelpfulVotes:             5,
		},
		{
			ID:                    "gr1",
			EntityID:              "g1",
			Rating:                4,
			Department:            entities.DepartmentFinance,
			Title:                 "Secure job, decent balance",
			Pros:                  "Job security is the best. Timings are fixed.",
			Cons:                  "Technology is outdated. Slow promotions.",
			Advice:                "Upgrade the internal software stack.",
			AuthorEmail:           "clerk@sbi.co.in",
			IsVerified:            true,
			IsAnonymous:           true,
			CreatedAt:             date("2024-03-05"),
			JobSecurityRating:     intPtr(5),
			WorkLifeBalanceRating: intPtr(4),
			TransparencyRating:    intPtr(3),
			BenefitsRating:        intPtr(5),
			HelpfulVotes:          20,
		},
	}
}

// Interviews returns the seed interview reports
func Interviews() []entities.InterviewReport {
	return []entities.InterviewReport{
		{
			ID:         "i1",
			EntityID:   "1",
			Role:       "Senior Software Engineer",
			Experience: entities.InterviewExperiencePositive,
			Difficulty: 4,
			WasGhosted: false,
			CreatedAt:  date("2024-02-10"),
		},
	}
}

// Salaries returns the seed salary submissions
func Salaries() []entities.SalarySubmission {
	return []entities.SalarySubmission{
		{
			ID:                "s1",
			EntityID:          "1",
			Role:              "L4 Software Engineer",
			YearsOfExperience: 3,
			CTC:               250000,
			InHand:            12000,
			Location:          "Mountain View",
			CreatedAt:         date("2024-01-15"),
		},
	}
}

// Questions returns the seed questions
func Questions() []entities.Question {
	return []entities.Question{
		{
			ID:        "cq2",
			EntityID:  "c4",
			Text:      "Is attendance compulsory?",
			CreatedAt: date("2024-08-10"),
			Answers: []entities.Answer{
				{
					ID:         "a2",
					Text:       "Depends on the prof, but usually 75% rule applies.",
					AuthorType: entities.AnswerAuthorPublic,
					IsVerified: false,
					CreatedAt:  date("2024-08-11"),
				},
			},
		},
	}
}

// Mentors returns the seed mentor registry
func Mentors() []entities.Mentor {
	return []entities.Mentor{
		{
			ID:         "m1",
			EntityID:   "1", // Google
			Name:       "Sarah Chen",
			Role:       "Staff Engineer (L6)",
			Bio:        "8 years at Google. Can help with System Design and promotion packets.",
			Price:      99,
			IsVerified: true,
			AvatarURL:  "https://i.pravatar.cc/150?u=sarah",
		},
		{
			ID:         "m3",
			EntityID:   "c4", // IIT Bombay
			Name:       "Rohan Gupta",
			Role:       "Final Year CSE",
			Bio:        "Cracked Day 1 placement at HFT. Ask me about competitive coding.",
			Price:      49,
			IsVerified: true,
			AvatarURL:  "https://i.pravatar.cc/150?u=rohan",
		},
		{
			ID:         "m4",
			EntityID:   "g1", // SBI
			Name:       "Amit Verma",
			Role:       "Probationary Officer",
			Bio:        "Cleared IBPS PO in first attempt. Can guide on exam strategy.",
			Price:      39,
			IsVerified: true,
			AvatarURL:  "https://i.pravatar.cc/150?u=amit",
		},
	}
}
