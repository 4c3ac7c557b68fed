package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"echocast/internal/database"
	"echocast/internal/repository"
)

// Deleting a session does not remove its stored file. This tool reclaims
// files in the upload directory that no session row references anymore.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	paths, err := sessions.ListFilePaths(context.Background())
	if err != nil {
		log.Fatalf("listing referenced files failed: %v", err)
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[filepath.Base(p)] = true
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		log.Fatalf("reading upload dir failed: %v", err)
	}

	var removed, kept int
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			kept++
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			log.Printf("failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	log.Printf("uploads cleanup completed: removed=%d kept=%d", removed, kept)
}
