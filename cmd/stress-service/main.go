package main

import (
	"context"
	"log"

	"github.com/soocrates/minishop/internal/app/stress"
)

func main() {
	if err := stress.Run(context.Background()); err != nil {
		log.Fatalf("stress-service: %v", err)
	}
}
