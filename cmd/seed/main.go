package main

import (
	"context"
	"log"

	"echocast/internal/database"
	"echocast/internal/domain"
	"echocast/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with a demo account and a couple of sessions.
func main() {
	db, err := database.Connect("echocast.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := &domain.User{
		Email:        "demo@echocast.dev",
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal("create demo user failed:", err)
	}

	fixtures := []*domain.Session{
		{Title: "Pilot episode", Description: "Intro and show format", UserID: demo.ID},
		{Title: "Episode 2: Guests", UserID: demo.ID},
	}
	for _, s := range fixtures {
		if err := sessions.Create(ctx, s); err != nil {
			log.Fatal("create session failed:", err)
		}
	}

	log.Printf("seeded user=%s sessions=%d", demo.Email, len(fixtures))
}
