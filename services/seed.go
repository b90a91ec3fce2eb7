package services

import (
	"log"
	"time"

	"legal_case_api_go/db"
	"legal_case_api_go/models"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "password123"

type seedUser struct {
	id           string
	name         string
	email        string
	specialities []string
}

var seedLawyers = []seedUser{
	{"LAWYER-001", "Sarah Mitchell", "sarah.mitchell@lawfirm.com", []string{"family", "contract"}},
	{"LAWYER-002", "David Chen", "david.chen@lawfirm.com", []string{"criminal"}},
	{"LAWYER-003", "Emily Rodriguez", "emily.rodriguez@lawfirm.com", []string{"contract", "property"}},
	{"LAWYER-004", "Michael Johnson", "michael.johnson@lawfirm.com", []string{"family"}},
	{"LAWYER-005", "Priya Sharma", "priya.sharma@lawfirm.com", []string{"property", "criminal"}},
}

var seedClients = []seedUser{
	{"CLIENT-001", "John Doe", "john.doe@example.com", nil},
	{"CLIENT-002", "Jane Smith", "jane.smith@example.com", nil},
	{"CLIENT-003", "Robert Brown", "robert.brown@example.com", nil},
	{"CLIENT-004", "Lisa Anderson", "lisa.anderson@example.com", nil},
	{"CLIENT-005", "Mark Wilson", "mark.wilson@example.com", nil},
}

// SeedDemoData registers five demo lawyers and five demo clients. Safe to
// call more than once; existing emails are skipped.
func SeedDemoData() error {
	hash, err := HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	seeded := 0
	for _, lawyer := range seedLawyers {
		if db.Users.EmailExists(lawyer.email) {
			continue
		}
		db.Users.Add(&models.User{
			UserID:       lawyer.id,
			Name:         lawyer.name,
			Email:        lawyer.email,
			Phone:        "555-" + lawyer.id[len(lawyer.id)-3:],
			Password:     hash,
			Role:         models.RoleLawyer,
			Specialities: lawyer.specialities,
			CreatedAt:    time.Now(),
		})
		seeded++
	}

	for _, client := range seedClients {
		if db.Users.EmailExists(client.email) {
			continue
		}
		db.Users.Add(&models.User{
			UserID:    client.id,
			Name:      client.name,
			Email:     client.email,
			Phone:     "555-" + client.id[len(client.id)-3:],
			Password:  hash,
			Role:      models.RoleClient,
			CreatedAt: time.Now(),
		})
		seeded++
	}

	if seeded > 0 {
		log.Printf("Seeded %d demo users", seeded)
	}
	return nil
}
