package main

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthlog/backend/config"
	"github.com/pageza/healthlog/backend/internal/database"
	"github.com/pageza/healthlog/backend/internal/events"
	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
)

const (
	password = "testpassword123"
	days     = 90
)

type testUser struct {
	email     string
	firstName string
	lastName  string
	dob       string
	heightCM  int
	baseKG    float64
}

var testUsers = []testUser{
	{"john.doe@example.com", "John", "Doe", "1985-04-12", 182, 88},
	{"jane.smith@example.com", "Jane", "Smith", "1992-09-30", 165, 61},
	{"no.records@example.com", "Bob", "Wilson", "1978-01-05", 175, 0},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	profiles := service.NewProfileService(db)
	weight := service.NewWeightService(db, events.Nop{})
	bp := service.NewBloodPressureService(db, events.Nop{})
	symptoms := service.NewSymptomService(db, events.Nop{})

	ctx := context.Background()
	today := types.NewDate(time.Now())

	for _, u := range testUsers {
		user, err := auth.Register(ctx, u.email, password)
		if errors.Is(err, service.ErrEmailTaken) {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}

		_, err = profiles.CreateProfile(ctx, user.ID, types.ProfileInput{
			FirstName:   u.firstName,
			LastName:    u.lastName,
			DateOfBirth: types.MustParseDate(u.dob),
			HeightCM:    u.heightCM,
		})
		if err != nil {
			log.Fatalf("Failed to create profile for %s: %v", u.email, err)
		}

		if u.baseKG > 0 {
			if err := seedRecords(ctx, weight, bp, symptoms, user.ID, u.baseKG, today); err != nil {
				log.Fatalf("Failed to seed records for %s: %v", u.email, err)
			}
		}
		log.Printf("Created user %s %s (%s)", u.firstName, u.lastName, u.email)
	}

	log.Printf("Test users ready, password: %s", password)
}

// seedRecords writes a daily weight and blood pressure series ending today, plus a few symptoms
func seedRecords(ctx context.Context, weight *service.WeightService, bp *service.BloodPressureService, symptoms *service.SymptomService, userID uuid.UUID, baseKG float64, today types.Date) error {
	for i := days - 1; i >= 0; i-- {
		date := types.NewDate(today.AddDate(0, 0, -i))
		wave := math.Sin(float64(i) / 7)

		if _, err := weight.CreateWeightRecord(ctx, userID, types.WeightInput{
			Date:     date,
			WeightKG: math.Round((baseKG+float64(i)*0.03+wave*0.6)*10) / 10,
		}); err != nil {
			return err
		}

		if _, err := bp.CreateBloodPressureRecord(ctx, userID, types.BloodPressureInput{
			Date:      date,
			Systolic:  120 + int(wave*8),
			Diastolic: 80 + int(wave*5),
			Pulse:     68 + i%7,
		}); err != nil {
			return err
		}

		if i%30 == 0 {
			if _, err := symptoms.CreateSymptomRecord(ctx, userID, types.SymptomInput{
				Date:        date,
				BodyPart:    "lower back",
				PainType:    "dull",
				Description: "After a long day at the desk",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
