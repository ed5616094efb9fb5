package main

import (
	"context"
	"log"

	"github.com/soocrates/minishop/internal/app/users"
)

func main() {
	if err := users.Run(context.Background()); err != nil {
		log.Fatalf("user-service: %v", err)
	}
}
