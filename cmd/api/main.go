package main

import (
	"context"
	"log"

	"github.com/menulink/restaurant-api-server/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("restaurant API failed: %v", err)
	}
}
