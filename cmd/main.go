package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/streakquiz/backend/api/middleware"
	v1 "github.com/streakquiz/backend/api/v1"
	"github.com/streakquiz/backend/internal/user"
	"github.com/streakquiz/backend/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{})

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.AppErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	repo := user.NewGormUserRepository(db.DB, db.Rdb)
	service := user.NewUserService(repo)
	v1.RegisterUserRoutes(e, service)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
