package main

import (
	"log"
	"os"
	"time"

	"bauportal/internal/database"
	"bauportal/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect(envOr("DATABASE_URL", "bauportal.db"))
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM documents")
	db.Exec("DELETE FROM folders")
	db.Exec("DELETE FROM trade_assignments")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM construction_project_types")
	db.Exec("DELETE FROM phases")
	db.Exec("DELETE FROM trades")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM tenants")

	// ================== TENANTS ==================
	log.Println("Creating tenants...")
	tenants := []domain.Tenant{
		{
			Slug:          "bau-mueller",
			Name:          "Bau Müller GmbH",
			Type:          domain.TenantCompany,
			Street:        "Hauptstraße 12",
			PostalCode:    "80331",
			City:          "München",
			ContactPerson: "Thomas Müller",
			ContactEmail:  "info@bau-mueller.de",
			ContactPhone:  "+49 89 1234567",
			Active:        true,
		},
		{
			Slug:          "hochbau-schneider",
			Name:          "Hochbau Schneider AG",
			Type:          domain.TenantCompany,
			Street:        "Industriering 4",
			PostalCode:    "50667",
			City:          "Köln",
			ContactPerson: "Petra Schneider",
			ContactEmail:  "kontakt@hochbau-schneider.de",
			Active:        true,
		},
	}
	for i := range tenants {
		if err := db.Create(&tenants[i]).Error; err != nil {
			log.Println("tenant seed failed:", err)
		}
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	users := []struct {
		tenant   string
		first    string
		last     string
		email    string
		password string
		role     domain.UserRole
	}{
		{"bau-mueller", "Thomas", "Müller", "admin@bau-mueller.de", "admin123", domain.RoleAdmin},
		{"bau-mueller", "Anna", "Schmidt", "anna@bau-mueller.de", "team123", domain.RoleEmployee},
		{"bau-mueller", "Jens", "Weber", "jens@elektro-weber.de", "partner123", domain.RolePartner},
		{"bau-mueller", "Familie", "Becker", "becker@example.de", "kunde123", domain.RoleCustomer},
		{"hochbau-schneider", "Petra", "Schneider", "admin@hochbau-schneider.de", "admin123", domain.RoleAdmin},
		{"hochbau-schneider", "Markus", "Klein", "markus@hochbau-schneider.de", "team123", domain.RoleEmployee},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("hash failed:", err)
			continue
		}
		if err := db.Create(&domain.User{
			TenantID:     u.tenant,
			FirstName:    u.first,
			LastName:     u.last,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       domain.UserActive,
		}).Error; err != nil {
			log.Println("user seed failed:", err)
		}
	}
	log.Println("Admin created: admin@bau-mueller.de / admin123")

	// ================== TRADES ==================
	log.Println("Creating Gewerke catalog...")
	trades := []domain.Trade{
		{Name: "Erdarbeiten", Category: "Rohbau", StandardDurationDays: 10, CostUnit: "EUR"},
		{Name: "Maurerarbeiten", Category: "Rohbau", StandardDurationDays: 25, CostUnit: "EUR"},
		{Name: "Dachdeckerarbeiten", Category: "Rohbau", StandardDurationDays: 12, CostUnit: "EUR"},
		{Name: "Elektroinstallation", Category: "Ausbau", StandardDurationDays: 15, CostUnit: "EUR"},
		{Name: "Sanitärinstallation", Category: "Ausbau", StandardDurationDays: 14, CostUnit: "EUR"},
		{Name: "Malerarbeiten", Category: "Ausbau", StandardDurationDays: 8, CostUnit: "EUR"},
	}
	for i := range trades {
		if err := db.Create(&trades[i]).Error; err != nil {
			log.Println("trade seed failed:", err)
		}
	}

	// ================== PHASES & PROJECT TYPES ==================
	log.Println("Creating phases and project types...")
	phases := []domain.Phase{
		{TenantID: "bau-mueller", Name: "Rohbau", SortOrder: 1},
		{TenantID: "bau-mueller", Name: "Ausbau", SortOrder: 2},
		{TenantID: "bau-mueller", Name: "Fertigstellung", SortOrder: 3},
	}
	for i := range phases {
		if err := db.Create(&phases[i]).Error; err != nil {
			log.Println("phase seed failed:", err)
		}
	}

	if err := db.Create(&domain.ConstructionProjectType{
		TenantID:             "bau-mueller",
		Name:                 "Einfamilienhaus",
		Category:             "Neubau",
		Status:               "active",
		StandardDurationDays: 270,
		PhaseIDs:             []int64{phases[0].ID, phases[1].ID, phases[2].ID},
	}).Error; err != nil {
		log.Println("project type seed failed:", err)
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")
	projects := []domain.Project{
		{
			TenantID:          "bau-mueller",
			ProjectCode:       "BV-2026-001",
			Name:              "Einfamilienhaus Becker",
			ConstructionTypes: []string{"Neubau"},
			Status:            domain.ProjectInProgress,
			Street:            "Lindenweg 8",
			PostalCode:        "82031",
			City:              "Grünwald",
			PlannedStart:      date(2026, 3, 1),
			PlannedEnd:        date(2026, 11, 30),
			ClientName:        "Familie Becker",
			ClientEmail:       "becker@example.de",
		},
		{
			TenantID:     "bau-mueller",
			ProjectCode:  "BV-2026-002",
			Name:         "Dachsanierung Stadthalle",
			Status:       domain.ProjectPlanned,
			City:         "München",
			PlannedStart: date(2026, 10, 1),
			PlannedEnd:   date(2026, 12, 15),
			ClientName:   "Stadt München",
		},
		{
			TenantID:     "hochbau-schneider",
			ProjectCode:  "BV-2026-001",
			Name:         "Bürogebäude Rheinblick",
			Status:       domain.ProjectInProgress,
			City:         "Köln",
			PlannedStart: date(2026, 1, 15),
			PlannedEnd:   date(2027, 6, 30),
			ClientName:   "Rheinblick Immobilien GmbH",
		},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			log.Println("project seed failed:", err)
		}
	}

	// ================== TRADE ASSIGNMENTS ==================
	log.Println("Creating trade assignments...")
	assignments := []domain.TradeAssignment{
		{
			TenantID:        "bau-mueller",
			ProjectID:       projects[0].ID,
			TradeID:         trades[0].ID,
			PhaseID:         phases[0].ID,
			Status:          domain.ProjectCompleted,
			ProgressPercent: 100,
			ActualEnd:       timePtr(date(2026, 3, 20)),
		},
		{
			TenantID:        "bau-mueller",
			ProjectID:       projects[0].ID,
			TradeID:         trades[1].ID,
			PhaseID:         phases[0].ID,
			Status:          domain.ProjectInProgress,
			ProgressPercent: 60,
		},
		{
			TenantID:        "bau-mueller",
			ProjectID:       projects[0].ID,
			TradeID:         trades[3].ID,
			PhaseID:         phases[1].ID,
			Status:          domain.ProjectPlanned,
			ProgressPercent: 0,
		},
		{
			TenantID:        "hochbau-schneider",
			ProjectID:       projects[2].ID,
			TradeID:         trades[1].ID,
			Status:          domain.ProjectInProgress,
			ProgressPercent: 35,
		},
	}
	for i := range assignments {
		if err := db.Create(&assignments[i]).Error; err != nil {
			log.Println("assignment seed failed:", err)
		}
	}

	log.Println("Seeding done.")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
