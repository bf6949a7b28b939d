package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/auth"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/routes"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Feasto API...")

	// Load environment variables
	_ = godotenv.Load()

	if !auth.SecretConfigured() {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	// Init storage
	store, err := initStorage()
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}

	// Seed default accounts and menu on first run
	if err := storage.Seed(store); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, store)

	// With the document store, back up the data file at 2 AM daily and
	// keep 4 days of backups
	if dataFile := os.Getenv("STORAGE_FILE"); dataFile != "" && os.Getenv("STORAGE_DRIVER") == "file" {
		go startDailyBackupAtFixedTime(dataFile, filepath.Join(filepath.Dir(dataFile), "backup"), 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage picks the persistence adapter from STORAGE_DRIVER:
// postgres (default), sqlite, or file (a single JSON document).
func initStorage() (storage.Store, error) {
	switch os.Getenv("STORAGE_DRIVER") {
	case "file":
		path := os.Getenv("STORAGE_FILE")
		if path == "" {
			path = "feasto-data.json"
		}
		log.Printf("✅ Using JSON document store at %s", path)
		return storage.NewFileStore(path)

	case "sqlite":
		path := os.Getenv("DATABASE_URI")
		if path == "" {
			path = "feasto.db"
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite connection failed: %w", err)
		}
		return migrate(storage.NewGormStore(db))

	default:
		db, err := openPostgres()
		if err != nil {
			return nil, err
		}
		return migrate(storage.NewGormStore(db))
	}
}

func migrate(store *storage.GormStore) (storage.Store, error) {
	if err := store.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}
	return store, nil
}

// openPostgres sets up the GORM DB connection
func openPostgres() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// startDailyBackupAtFixedTime backs up the data file daily at a fixed
// hour and removes old backups
func startDailyBackupAtFixedTime(dataFile, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destFile := filepath.Join(backupDir, timestamp+"_"+filepath.Base(dataFile))

		if err := copyFile(dataFile, destFile); err != nil {
			log.Printf("❌ Failed to back up data file: %v", err)
		} else {
			log.Printf("✅ Data file backed up to %s", destFile)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backups older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		backupPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(backupPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(backupPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", backupPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", backupPath)
			}
		}
	}
}
