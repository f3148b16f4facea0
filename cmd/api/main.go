package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/RobertCastro/e-commerce-payment-service/internal/app"
)

func main() {
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
