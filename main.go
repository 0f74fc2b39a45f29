package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/restodesk/backoffice/cmd/app"
)

// @title        RestoDesk back-office API
// @version      1.0
// @description  Super-admin API for restaurants, onboarding, POS and billing.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token, the auth_token cookie is accepted as well
func main() {
	if err := app.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "backoffice: %v\n", err)
		os.Exit(1)
	}
}
