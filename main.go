package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rakhadenta/gokart/app/cmd"
	"github.com/rakhadenta/gokart/app/configs"
	"github.com/rakhadenta/gokart/app/routes"
	"github.com/rakhadenta/gokart/app/utils/token"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty! Run `gokart generate-keys` and update your .env file.")
	}

	tokenMaker, err := token.NewMaker(env.JWTSecret, time.Duration(env.JWTExpiryHours)*time.Hour)
	if err != nil {
		log.Fatal("Failed to initialize token maker:", err)
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, tokenMaker)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
