package main

import (
	"context"
	"log"

	"github.com/soocrates/minishop/internal/app/orders"
)

func main() {
	if err := orders.Run(context.Background()); err != nil {
		log.Fatalf("order-service: %v", err)
	}
}
