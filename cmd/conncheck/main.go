// Command conncheck verifies that the configured service principal can
// reach the DNS zone, mirroring the console's connection test from the
// command line.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"azdns/internal/credstore"
	"azdns/internal/dns/azure"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := credstore.FromEnv()

	fmt.Println("Testing Azure DNS connection...")
	fmt.Printf("Tenant ID: %s\n", cfg.TenantID)
	fmt.Printf("Client ID: %s\n", cfg.ClientID)
	fmt.Printf("Subscription ID: %s\n", cfg.SubscriptionID)
	fmt.Printf("Resource Group: %s\n", cfg.ResourceGroup)
	fmt.Printf("DNS Zone: %s\n", cfg.Zone)
	fmt.Println(strings.Repeat("-", 50))

	if missing := cfg.MissingFields(); len(missing) > 0 {
		fail(fmt.Errorf("missing required settings: %s", strings.Join(missing, ", ")))
	}

	fmt.Println("\n1. Building zone gateway...")
	gw, err := azure.New(cfg)
	if err != nil {
		fail(err)
	}
	fmt.Println("✓ Gateway created successfully")

	fmt.Printf("\n2. Listing records from zone: %s\n", cfg.Zone)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	records, err := gw.List(ctx)
	if err != nil {
		fail(err)
	}
	fmt.Printf("✓ Successfully retrieved %d records\n", len(records))

	fmt.Println("\nFirst 5 records:")
	for i, record := range records {
		if i == 5 {
			break
		}
		fmt.Printf("  - %s (%s) TTL: %d\n", record.Name, record.Type, record.TTL)
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("✓ Connection test PASSED")
	fmt.Println(strings.Repeat("=", 50))
}

// fail prints the short and full error forms and exits non-zero.
func fail(err error) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("✗ Connection test FAILED")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("\nError: %s\n", azure.ShortError(err))
	fmt.Printf("\nDetails: %v\n", err)
	os.Exit(1)
}
