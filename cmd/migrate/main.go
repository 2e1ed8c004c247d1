package main

import (
	"inkwell/internal/model"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.PostModel{}); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	log.Info("Database migration complete")
}
