package main

import (
	"context"
	"log"

	"github.com/soocrates/minishop/internal/app/gateway"
)

func main() {
	if err := gateway.Run(context.Background()); err != nil {
		log.Fatalf("gateway: %v", err)
	}
}
