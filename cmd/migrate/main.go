package main

import (
	"log"
	"os"

	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_PATH")
	if dsn == "" {
		dsn = os.Getenv("DB_CONNECTION_STRING")
	}
	if dsn == "" {
		log.Fatal("Error: DATABASE_PATH is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting migration...")

	log.Println("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.User{},
		&model.Meeting{},
		&model.MeetingEmbedding{},
		&model.LiveSession{},
		&model.TranscriptSegment{},
		&model.UsageCounter{},
		&model.TrackedIssue{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Invariant L (I-Lifetime): once a user's is_lifetime flag is set, no
	// application-level update may clear it. Enforced in the database so a
	// bug in application code can never silently downgrade a lifetime user.
	log.Println("Step 3: Installing the is_lifetime storage guard...")
	guardSQL := []string{
		`CREATE OR REPLACE FUNCTION enforce_lifetime_flag() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
		  IF OLD.is_lifetime = true AND NEW.is_lifetime = false THEN
		    RAISE EXCEPTION 'is_lifetime cannot be unset once granted';
		  END IF;
		  RETURN NEW;
		END; $$;`,
		`DROP TRIGGER IF EXISTS trg_enforce_lifetime_flag ON users;`,
		`CREATE TRIGGER trg_enforce_lifetime_flag BEFORE UPDATE ON users
		 FOR EACH ROW EXECUTE FUNCTION enforce_lifetime_flag();`,
	}
	for _, sql := range guardSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute guard SQL: %v", err)
		}
	}

	log.Println("Success: migration completed.")
}
