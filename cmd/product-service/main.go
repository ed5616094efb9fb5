package main

import (
	"context"
	"log"

	"github.com/soocrates/minishop/internal/app/products"
)

func main() {
	if err := products.Run(context.Background()); err != nil {
		log.Fatalf("product-service: %v", err)
	}
}
