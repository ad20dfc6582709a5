package main

import (
	"context"
	"fmt"
	"os"

	"github.com/classtrack/coaching-backend-go/internal/config"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/classtrack/coaching-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Pool.Close()

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}

	fmt.Println("Migration complete")
}
