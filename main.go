package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/api/handlers"
	"github.com/legaldesk/legal-case-api/config"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize legal-case-api", "error", err)
	}

	zap.S().Infow("legal-case-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
		"backend", a.Store.Name(),
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
