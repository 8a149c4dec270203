// Command seed fills the development database with demo data.
package main

import (
	"flag"
	"log"

	"devlink/internal/config"
	"devlink/internal/database"
	"devlink/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	numPosts := flag.Int("posts", 60, "number of posts to create")
	clean := flag.Bool("clean", false, "wipe existing rows before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext passwords for faster seeding (dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
