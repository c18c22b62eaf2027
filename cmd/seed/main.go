package main

import (
	"log"
	"os"
	"time"

	"xavro/internal/database"
	"xavro/internal/domain"
	"xavro/internal/pkg/dateutil"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "xavro.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.RoomCost{},
		&domain.Showtime{},
		&domain.SpecialSchedule{},
		&domain.Customer{},
		&domain.Waiver{},
		&domain.CustomerWaiver{},
		&domain.Booking{},
		&domain.Payment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM customer_waivers")
	db.Exec("DELETE FROM waivers")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM special_schedules")
	db.Exec("DELETE FROM showtimes")
	db.Exec("DELETE FROM room_costs")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		Email:        "admin@xavro.local",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Username:     "frontdesk",
		PasswordHash: string(staffHash),
		Email:        "frontdesk@xavro.local",
		Role:         domain.RoleEmployee,
	})

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	vault := domain.Room{
		Title:       "The Vault",
		MaxCapacity: 8,
		MinCapacity: 2,
		Duration:    60,
		ResetBuffer: 15,
		Description: "A bank heist gone wrong. Crack the vault before the silent alarm brings the police.",
	}
	db.Create(&vault)

	cabin := domain.Room{
		Title:       "Cabin Fever",
		MaxCapacity: 6,
		MinCapacity: 2,
		Duration:    75,
		ResetBuffer: 15,
		Description: "Snowed in at a remote cabin with a secret. Find the way out before nightfall.",
	}
	db.Create(&cabin)

	for _, room := range []domain.Room{vault, cabin} {
		for guests := room.MinCapacity; guests <= room.MaxCapacity; guests++ {
			db.Create(&domain.RoomCost{
				RoomID:      room.ID,
				GuestsCount: guests,
				TotalCost:   float64(guests) * 28.0,
			})
		}
	}

	// ================== SHOWTIMES ==================
	log.Println("Creating showtimes...")

	// Thursday through Sunday, three slots an evening.
	slots := []struct {
		start, end string
	}{
		{"17:00", "18:00"},
		{"18:30", "19:30"},
		{"20:00", "21:00"},
	}
	for _, room := range []domain.Room{vault, cabin} {
		for day := 3; day <= 6; day++ {
			for i, slot := range slots {
				db.Create(&domain.Showtime{
					RoomID:    room.ID,
					DayOfWeek: day,
					StartTime: slot.start,
					EndTime:   slot.end,
					Timeslot:  i + 1,
				})
			}
		}
	}

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")

	customers := make([]domain.Customer, 0, 3)
	names := []struct{ first, last, email string }{
		{"Maya", "Chen", "maya.chen@example.com"},
		{"Jordan", "Wells", "jordan.wells@example.com"},
		{"Priya", "Nair", "priya.nair@example.com"},
	}
	for _, n := range names {
		c := domain.Customer{
			FirstName: n.first,
			LastName:  n.last,
			Email:     n.email,
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	waiverStart := dateutil.DateOnly(time.Now().UTC().AddDate(0, -6, 0))
	waiver := domain.Waiver{StartDate: &waiverStart}
	db.Create(&waiver)
	signed := time.Now().UTC()
	for _, c := range customers {
		db.Create(&domain.CustomerWaiver{
			CustomerID: c.ID,
			WaiverID:   waiver.ID,
			SignDate:   &signed,
		})
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	// Book the next Friday evening for the vault.
	showDate := nextWeekday(time.Now().UTC(), 4)
	for i, c := range customers[:2] {
		b := domain.Booking{
			RoomID:       vault.ID,
			CustomerID:   c.ID,
			GuestCount:   4,
			OrderID:      uuid.NewString(),
			BookingDate:  dateutil.DateOnly(time.Now().UTC()),
			ShowDate:     showDate,
			ShowTimeslot: i + 1,
		}
		db.Create(&b)

		db.Create(&domain.Payment{
			BookingID:  b.ID,
			PaymentAmt: 56.0,
			Status:     domain.PaymentPartialPaid,
		})
	}

	log.Println("Seed completed!")
	log.Println("Staff accounts: admin / admin123, frontdesk / staff123")
	log.Printf("Demo bookings on %s (The Vault, slots 1 and 2)", dateutil.FormatDate(showDate))
}

// nextWeekday returns the next calendar date falling on the given schedule
// weekday (0 = Monday .. 6 = Sunday), at least one day out.
func nextWeekday(from time.Time, dayOfWeek int) time.Time {
	d := dateutil.DateOnly(from).AddDate(0, 0, 1)
	for dateutil.ScheduleWeekday(d) != dayOfWeek {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
