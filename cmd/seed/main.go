package main

import (
	"log"
	"os"
	"time"

	"lifehub-be/internal/model"
	"lifehub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds a demo account with a few notes, events, and goals so the
// frontend has something to render on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	email := "demo@lifehub.local"

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Demo user %s already exists, nothing to do.", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	user := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Demo",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}
	color.Green("Created user %s (password: demo1234)", email)

	notes := []model.Note{
		{Id: uuid.New(), Data: "Welcome to LifeHub! This is your first note.", UserId: user.Id},
		{Id: uuid.New(), Data: "Groceries: milk, eggs, coffee beans.", UserId: user.Id},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Fatal("Error: Failed to create note:", err)
		}
	}
	color.Green("Created %d notes", len(notes))

	tomorrow := time.Now().AddDate(0, 0, 1)
	start := "09:00"
	end := "10:30"
	events := []model.CalendarEvent{
		{
			Id:        uuid.New(),
			Title:     "Team standup",
			EventDate: datatypes.Date(tomorrow),
			StartTime: &start,
			EndTime:   &end,
			Color:     "#28a745",
			UserId:    user.Id,
			NoteId:    &notes[0].Id,
		},
		{
			Id:        uuid.New(),
			Title:     "Dentist",
			EventDate: datatypes.Date(tomorrow.AddDate(0, 0, 6)),
			Color:     "#007bff",
			UserId:    user.Id,
		},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Fatal("Error: Failed to create event:", err)
		}
	}
	color.Green("Created %d calendar events", len(events))

	deadline := datatypes.Date(time.Now().AddDate(0, 1, 0))
	goals := []model.RoadmapGoal{
		{Id: uuid.New(), Title: "Learn Go", Description: "Finish the tour and build something real", Position: 1, Deadline: &deadline, UserId: user.Id},
		{Id: uuid.New(), Title: "Run a 10k", Position: 2, UserId: user.Id},
		{Id: uuid.New(), Title: "Read 12 books", Position: 3, UserId: user.Id},
	}
	for i := range goals {
		if err := db.Create(&goals[i]).Error; err != nil {
			log.Fatal("Error: Failed to create goal:", err)
		}
	}
	color.Green("Created %d roadmap goals", len(goals))

	color.Cyan("Seed complete.")
}
