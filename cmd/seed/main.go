package main

import (
	"fmt"
	"log"

	"parkwise/config"
	"parkwise/database"
	slotRepoPkg "parkwise/database/repository/slot"
	userRepoPkg "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/services/parking"
	userSvcPkg "parkwise/services/user"
)

// Seeds the database with the default admin accounts, a demo attendant and
// owner, and the initial slot grid. Safe to re-run: it skips when users
// already exist.
func main() {
	config.LoadConfig()
	database.InitDB()

	userRepo := userRepoPkg.NewMongoUserRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()

	userService := &userSvcPkg.DefaultUserService{Repo: userRepo}
	slotService := &parking.DefaultSlotService{Repo: slotRepo}

	existing, err := userRepo.GetAll(userRepoPkg.UserFilter{})
	if err != nil {
		log.Fatalf("seed: failed to check existing users: %v", err)
	}
	if len(existing) > 0 {
		log.Println("seed: database already seeded, skipping")
		return
	}

	log.Println("seed: creating users...")
	seedUsers(userService)

	log.Println("seed: creating parking slots...")
	seedSlots(slotService)

	log.Println("seed: done")
}

func seedUsers(svc userSvcPkg.UserService) {
	users := []models.User{
		{
			Name:        "Super Admin",
			Email:       "admin@parking.com",
			Password:    "admin123",
			Role:        models.RoleAdmin,
			AdminLevel:  models.AdminLevelSuper,
			Permissions: []string{"all"},
			Status:      models.UserStatusActive,
		},
		{
			Name:        "Manager Admin",
			Email:       "manager@parking.com",
			Password:    "manager123",
			Role:        models.RoleAdmin,
			AdminLevel:  models.AdminLevelManager,
			Permissions: []string{"slots", "users", "reports"},
			Status:      models.UserStatusActive,
		},
		{
			Name:     "Jane Smith",
			Email:    "attendant@parking.com",
			Password: "attendant123",
			Role:     models.RoleAttendant,
			Status:   models.UserStatusActive,
		},
		{
			Name:          "John Doe",
			Email:         "john@example.com",
			Password:      "password123",
			Role:          models.RoleUser,
			Phone:         "+1234567890",
			VehicleNumber: "ABC123",
			VehicleType:   "car",
			Status:        models.UserStatusActive,
		},
	}

	for _, u := range users {
		if _, err := svc.Register(u); err != nil {
			log.Fatalf("seed: failed to create user %s: %v", u.Email, err)
		}
	}
}

func seedSlots(svc parking.SlotService) {
	type sectionSpec struct {
		section string
		typ     string
		rate    float64
		limit   int
		count   int
	}

	sections := []sectionSpec{
		{section: "A", typ: models.SlotTypeRegular, rate: 5, limit: 24, count: 10},
		{section: "B", typ: models.SlotTypeCompact, rate: 4, limit: 24, count: 10},
		{section: "C", typ: models.SlotTypeLarge, rate: 7, limit: 12, count: 5},
	}

	for _, s := range sections {
		for i := 1; i <= s.count; i++ {
			slot := models.ParkingSlot{
				Number:       fmt.Sprintf("%s%02d", s.section, i),
				Section:      s.section,
				Type:         s.typ,
				HourlyRate:   s.rate,
				MaxTimeLimit: s.limit,
			}
			if _, err := svc.CreateSlot(slot); err != nil {
				log.Fatalf("seed: failed to create slot %s: %v", slot.Number, err)
			}
		}
	}

	specials := []models.ParkingSlot{
		{Number: "E01", Section: "E", Type: models.SlotTypeElectric, HourlyRate: 6, MaxTimeLimit: 8, Description: "EV charging point"},
		{Number: "E02", Section: "E", Type: models.SlotTypeElectric, HourlyRate: 6, MaxTimeLimit: 8, Description: "EV charging point"},
		{Number: "H01", Section: "H", Type: models.SlotTypeHandicap, HourlyRate: 3, MaxTimeLimit: 24},
		{Number: "V01", Section: "V", Type: models.SlotTypeVIP, HourlyRate: 12, MaxTimeLimit: 48, Description: "Covered, near entrance"},
	}
	for _, slot := range specials {
		if _, err := svc.CreateSlot(slot); err != nil {
			log.Fatalf("seed: failed to create slot %s: %v", slot.Number, err)
		}
	}
}
