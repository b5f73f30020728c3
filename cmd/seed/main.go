package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"skillsconnect/internal/database"
	"skillsconnect/internal/domain"
	"skillsconnect/internal/modules/upload"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "skillsconnect.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Artisan{},
		&domain.User{},
		&domain.Review{},
		&domain.Ad{},
		&domain.SearchRequestLog{},
		&upload.Document{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM search_request_logs")
	db.Exec("DELETE FROM verification_documents")
	db.Exec("DELETE FROM ads")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM artisans")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:         "admin@skillsconnect.co.za",
		PasswordHash:  string(adminHash),
		Role:          domain.RoleAdmin,
		Name:          "Platform Admin",
		EmailVerified: true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@skillsconnect.co.za / admin123")

	// ================== ARTISANS ==================
	log.Println("Creating artisans...")
	now := time.Now()

	type seedArtisan struct {
		first, last, email, phone, location string
		services                            []string
		rating                              string
		reviews                             int
		years                               int
		verified                            bool
		tier                                domain.SubscriptionTier
		approval                            domain.ApprovalStatus
	}

	seeds := []seedArtisan{
		{"Thabo", "Nkosi", "thabo.nkosi@example.co.za", "+27 11 555 0101",
			"Johannesburg, Gauteng", []string{"builders", "renovations"}, "4.90", 31, 12,
			true, domain.TierPremium, domain.ApprovalApproved},
		{"Sipho", "Dlamini", "sipho.dlamini@example.co.za", "+27 11 555 0102",
			"Johannesburg, Gauteng", []string{"builders"}, "4.80", 14, 8,
			true, domain.TierVerified, domain.ApprovalApproved},
		{"Lindiwe", "Mokoena", "lindiwe.mokoena@example.co.za", "+27 11 555 0103",
			"Johannesburg, Gauteng", []string{"builders", "tilers"}, "4.50", 52, 15,
			true, domain.TierVerified, domain.ApprovalApproved},
		{"Pieter", "van Wyk", "pieter.vanwyk@example.co.za", "+27 12 555 0104",
			"Pretoria, Gauteng", []string{"electricians"}, "4.70", 22, 10,
			true, domain.TierVerified, domain.ApprovalApproved},
		{"Thandi", "Mthembu", "thandi.mthembu@example.co.za", "+27 21 555 0105",
			"Cape Town, Western Cape", []string{"painters", "plasterers"}, "4.60", 18, 6,
			true, domain.TierPremium, domain.ApprovalApproved},
		{"Johan", "Botha", "johan.botha@example.co.za", "+27 21 555 0106",
			"Cape Town, Western Cape", []string{"plumbers"}, "4.20", 9, 4,
			true, domain.TierVerified, domain.ApprovalApproved},
		{"Ayanda", "Zulu", "ayanda.zulu@example.co.za", "+27 31 555 0107",
			"Durban, KwaZulu-Natal", []string{"electricians", "solar installers"}, "4.95", 40, 14,
			true, domain.TierPremium, domain.ApprovalApproved},
		// Free-tier listing: discoverable by direct link only, never via search
		{"Sizwe", "Khumalo", "sizwe.khumalo@example.co.za", "+27 11 555 0108",
			"Johannesburg, Gauteng", []string{"builders"}, "5.00", 3, 2,
			false, domain.TierUnverified, domain.ApprovalApproved},
		// Waiting in the admin review queue
		{"Naledi", "Molefe", "naledi.molefe@example.co.za", "+27 12 555 0109",
			"Pretoria, Gauteng", []string{"carpenters"}, "0.00", 0, 5,
			false, domain.TierVerified, domain.ApprovalPending},
	}

	for _, s := range seeds {
		artisan := domain.Artisan{
			FirstName:        s.first,
			LastName:         s.last,
			Email:            s.email,
			Phone:            s.phone,
			Location:         s.location,
			Services:         domain.ServiceList(s.services),
			Description:      fmt.Sprintf("%s %s, %d years of experience serving %s.", s.first, s.last, s.years, s.location),
			YearsExperience:  s.years,
			Rating:           s.rating,
			ReviewCount:      s.reviews,
			Verified:         s.verified,
			SubscriptionTier: s.tier,
			ApprovalStatus:   s.approval,
		}
		if s.verified {
			verifiedAt := now.AddDate(0, -3, 0)
			artisan.Verified = true
			artisan.VerifiedAt = &verifiedAt
			artisan.ApprovedBy = &admin.ID
			artisan.ApprovedAt = &verifiedAt
		}
		db.Create(&artisan)

		userHash, _ := bcrypt.GenerateFromPassword([]byte("artisan123"), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Email:         s.email,
			PasswordHash:  string(userHash),
			Role:          domain.RoleArtisan,
			Name:          s.first + " " + s.last,
			Phone:         s.phone,
			EmailVerified: true,
			ArtisanID:     &artisan.ID,
		})
	}
	log.Printf("Created %d artisans (password: artisan123)", len(seeds))

	// ================== ADS ==================
	log.Println("Creating ads...")
	adStart := now.AddDate(0, -1, 0)
	adEnd := now.AddDate(0, 2, 0)
	adsSeed := []domain.Ad{
		{Title: "Builders Warehouse Winter Sale", ImageURL: "https://cdn.skillsconnect.co.za/ads/bw-sale.png",
			TargetURL: "https://example.co.za/sale", Placement: "homepage", IsActive: true,
			StartDate: &adStart, EndDate: &adEnd},
		{Title: "Get Verified, Get Found", ImageURL: "https://cdn.skillsconnect.co.za/ads/verify.png",
			TargetURL: "https://skillsconnect.co.za/apply", Placement: "search_results", IsActive: true},
		{Title: "Expired Promo", ImageURL: "https://cdn.skillsconnect.co.za/ads/old.png",
			TargetURL: "https://example.co.za/old", Placement: "homepage", IsActive: true,
			EndDate: &adStart},
	}
	for i := range adsSeed {
		db.Create(&adsSeed[i])
	}

	log.Println("Seed complete.")
}
