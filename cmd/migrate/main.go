package main

import (
	"log"
	"os"

	"wink-music-be/internal/model"
	"wink-music-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := model.All()
	log.Printf("Step 1: Running AutoMigrate for %d Tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: foreign keys (idempotent)
	log.Println("Step 2: Creating Foreign Keys...")

	postMigrationSQL := []string{
		foreignKey("session_contexts", "fk_session_contexts_session", "session_id", "chat_sessions", "CASCADE"),
		foreignKey("chat_messages", "fk_chat_messages_session", "session_id", "chat_sessions", "CASCADE"),
		foreignKey("ai_recommendations", "fk_ai_recommendations_session", "session_id", "chat_sessions", "CASCADE"),
		foreignKey("ai_recommendation_songs", "fk_ai_recommendation_songs_recommendation", "recommendation_id", "ai_recommendations", "CASCADE"),
		foreignKey("playlists", "fk_playlists_session", "session_id", "chat_sessions", "SET NULL"),
		foreignKey("playlist_items", "fk_playlist_items_playlist", "playlist_id", "playlists", "CASCADE"),
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

func foreignKey(table, name, column, refTable, onDelete string) string {
	return `DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + name + `') THEN ` +
		`ALTER TABLE ` + table + ` ADD CONSTRAINT ` + name + ` FOREIGN KEY (` + column + `) REFERENCES ` + refTable + `(id) ON DELETE ` + onDelete + `; ` +
		`END IF; END $$;`
}
