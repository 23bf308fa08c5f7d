package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/radityaputra/shift-roster-api/pkg/database"
)

// Seeds a sample roster for local development. Does nothing when the
// employee table already has rows.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()

	var count int64
	db.Model(&database.Employee{}).Count(&count)
	if count > 0 {
		fmt.Printf("Employee table already has %d rows, nothing to seed\n", count)
		os.Exit(0)
	}

	names := []string{"Toli", "Tole", "Tina", "Tralala", "Mulyadi", "Komeng"}
	for _, name := range names {
		employee := database.Employee{ID: uuid.NewString(), Name: name}
		if err := db.Create(&employee).Error; err != nil {
			fmt.Printf("Error seeding %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Seeded employee %s (%s)\n", employee.Name, employee.ID)
	}
}
