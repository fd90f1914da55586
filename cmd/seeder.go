package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM attendance").Error; err != nil {
				log.Fatalf("failed to clear attendance: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password123"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUsers := []struct {
			Name       string
			Email      string
			Role       string
			EmployeeID string
			Department string
		}{
			{"Maya Manager", "manager@mail.com", "manager", "EMP1000", "Operations"},
			{"Andi Wijaya", "andi@mail.com", "employee", "EMP1001", "Engineering"},
			{"Budi Santoso", "budi@mail.com", "employee", "EMP1002", "Engineering"},
			{"Citra Lestari", "citra@mail.com", "employee", "EMP1003", "Finance"},
			{"Dewi Anggraini", "dewi@mail.com", "employee", "EMP1004", "Finance"},
		}

		userIDs := make(map[string]string, len(seedUsers))
		for _, u := range seedUsers {
			var existingID string
			row := db.Raw("SELECT id FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&existingID); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				userIDs[u.Email] = existingID
				continue
			}

			id := uuid.NewString()
			if err := db.Exec(
				"INSERT INTO users (id, name, email, password_hash, role, employee_id, department, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, now())",
				id, u.Name, u.Email, string(hash), u.Role, u.EmployeeID, u.Department,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			userIDs[u.Email] = id
			fmt.Printf("Seeded user: %s (%s)\n", u.Email, u.Role)
		}

		// A few days of history for the first two employees: one full day,
		// one late day, one half day.
		now := time.Now()
		seedRecords := []struct {
			Email    string
			DaysAgo  int
			CheckIn  string
			CheckOut string
			Status   string
			Hours    int
		}{
			{"andi@mail.com", 3, "08:30", "17:30", attendance.StatusPresent, 9},
			{"andi@mail.com", 2, "09:15", "18:00", attendance.StatusLate, 9},
			{"andi@mail.com", 1, "08:45", "11:30", attendance.StatusHalfDay, 3},
			{"budi@mail.com", 2, "08:20", "17:00", attendance.StatusPresent, 9},
			{"budi@mail.com", 1, "10:05", "18:30", attendance.StatusLate, 8},
		}

		for _, r := range seedRecords {
			day := now.AddDate(0, 0, -r.DaysAgo)
			date := attendance.DateKey(day)
			userID := userIDs[r.Email]

			var exists int
			row := db.Raw("SELECT 1 FROM attendance WHERE user_id = ? AND date = ?", userID, date).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			checkIn := atTime(day, r.CheckIn)
			checkOut := atTime(day, r.CheckOut)
			if err := db.Exec(
				"INSERT INTO attendance (id, user_id, date, check_in_time, check_out_time, status, total_hours, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, now())",
				uuid.NewString(), userID, date, checkIn, checkOut, r.Status, r.Hours,
			).Error; err != nil {
				log.Fatalf("failed to insert attendance for %s on %s: %v", r.Email, date, err)
			}
			fmt.Printf("Seeded attendance: %s %s (%s)\n", r.Email, date, r.Status)
		}

		fmt.Println("Seed data loaded. Login password for all users:", password)
	},
}

func atTime(day time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
