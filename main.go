package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/api/handlers"
	"github.com/mindspacehq/mindspace-api/config"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database and router
		log.Fatal(err)
	}

	zap.S().Infow("mindspace-api is up and running",
		"port", a.Config.Port,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
