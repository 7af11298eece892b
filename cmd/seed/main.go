// Command seed loads a small sample catalog through the use-case layer so
// a freshly migrated database has data to exercise the API against.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/light-bringer/discount-service/internal/app/catalog/repo"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
)

var spannerDB = flag.String("database",
	getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/discount-db"),
	"Full Spanner database path")

type sampleProduct struct {
	name            string
	price           float64
	country         string
	discountPercent float64
}

var samples = []sampleProduct{
	{name: "Laptop", price: 1000, country: "SE", discountPercent: 10},
	{name: "Phone", price: 500, country: "SE"},
	{name: "Headphones", price: 50, country: "DE"},
	{name: "Monitor", price: 300, country: "DE", discountPercent: 25},
	{name: "Keyboard", price: 80, country: "FR", discountPercent: 5},
}

func main() {
	flag.Parse()

	ctx := context.Background()
	logger := hclog.New(&hclog.LoggerOptions{Name: "seed"})

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("failed to create Spanner client: %v", err)
	}
	defer client.Close()

	clk := clock.NewRealClock()
	productRepo := repo.NewProductRepo(client, clk, logger, repo.Options{})
	createProduct := create_product.NewInteractor(productRepo, clk)
	applyDiscount := apply_discount.NewInteractor(productRepo)

	for _, s := range samples {
		product, err := createProduct.Execute(ctx, &create_product.Request{
			Name:    s.name,
			Price:   s.price,
			Country: s.country,
		})
		if err != nil {
			log.Fatalf("failed to create %s: %v", s.name, err)
		}
		log.Printf("created %s (%s) in %s", s.name, product.ID(), s.country)

		if s.discountPercent > 0 {
			_, err := applyDiscount.Execute(ctx, &apply_discount.Request{
				ProductID:  product.ID().String(),
				DiscountID: uuid.New().String(),
				Percent:    s.discountPercent,
			})
			if err != nil {
				log.Fatalf("failed to discount %s: %v", s.name, err)
			}
			log.Printf("applied %.0f%% discount to %s", s.discountPercent, s.name)
		}
	}

	log.Println("seeding complete")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
