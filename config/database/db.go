package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/isharehowlabs/yahudim.app/pkg/logger"

	_ "github.com/lib/pq"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// ConnString returns databaseURL, or builds one from the user/password/host/port/dbname variables.
func ConnString(databaseURL string) string {
	if databaseURL != "" {
		return databaseURL
	}
	dbUser := strings.TrimSpace(os.Getenv("user"))
	dbPass := strings.TrimSpace(os.Getenv("password"))
	dbHost := strings.TrimSpace(os.Getenv("host"))
	dbPort := strings.TrimSpace(os.Getenv("port"))
	dbName := strings.TrimSpace(os.Getenv("dbname"))

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=require", dbUser, dbPass, dbHost, dbPort, dbName)
}

func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", ConnString(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	// Retry a few times in case of temporary DNS/network blips
	for i := 0; i < pingAttempts; i++ {
		if err = db.Ping(); err == nil {
			logger.Sugar.Info("Successfully connected to the database")
			return db, nil
		}
		logger.Sugar.Infof("Database connection failed, retrying in %s... (%v)", pingBackoff, err)
		time.Sleep(pingBackoff)
	}
	db.Close()
	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", pingAttempts, err)
}
