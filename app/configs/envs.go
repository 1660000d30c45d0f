package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	Port           string
	JWTSecret      string
	JWTExpiryHours int
	AppEnv         string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	expiryHours := 24
	if raw := os.Getenv("JWT_EXPIRY_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			expiryHours = parsed
		} else {
			log.Printf("Warning: invalid JWT_EXPIRY_HOURS %q, falling back to %d", raw, expiryHours)
		}
	}

	return ENV{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		Port:           os.Getenv("APP_PORT"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: expiryHours,
		AppEnv:         os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
