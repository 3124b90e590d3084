package driver

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// DBPath resolves the SQLite database location. SABER_PRO_DB wins when set;
// on Render the dataset lives under the project mount, locally it sits next
// to the repo under data/processed.
func DBPath() string {
	if path := os.Getenv("SABER_PRO_DB"); path != "" {
		return path
	}
	if os.Getenv("RENDER") != "" {
		return "/opt/render/project/src/data/processed/saber_pro.db"
	}
	return filepath.Join("data", "processed", "saber_pro.db")
}

func ConnectDB() *sql.DB {
	path := DBPath()
	if _, err := os.Stat(path); err != nil {
		log.Printf("Database not found at %s, run cmd/load-data first", path)
	}
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	return db
}
