package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"

	"items-api/models"
	"items-api/storage"
)

var itemNames = []string{
	"Laptop Computer", "Smartphone", "Wireless Headphones", "Coffee Maker",
	"Fitness Tracker", "Bluetooth Speaker", "Tablet", "Gaming Console",
	"Digital Camera", "Smart Watch", "Portable Charger", "Wireless Mouse",
	"Mechanical Keyboard", "USB-C Cable", "Power Bank", "Webcam",
	"Microphone", "Monitor Stand", "Desk Lamp", "Office Chair",
}

var descriptions = []string{
	"High-quality product with excellent features",
	"Perfect for daily use and professional work",
	"Compact and portable design",
	"Advanced technology with user-friendly interface",
	"Durable construction for long-lasting performance",
	"Modern design with cutting-edge features",
	"Affordable option with great value",
	"Premium quality for demanding users",
	"Versatile product for multiple applications",
	"Innovative design with smart functionality",
}

// Price tiers: budget, mid-range, premium, high-end.
var priceTiers = [][2]float64{
	{10.00, 50.00},
	{50.00, 150.00},
	{150.00, 500.00},
	{500.00, 2000.00},
}

// randomPatch fabricates one item payload. seq keeps the generated names
// distinguishable.
func randomPatch(rng *rand.Rand, seq int) models.ItemPatch {
	name := fmt.Sprintf("%s #%d", itemNames[rng.Intn(len(itemNames))], seq)
	description := descriptions[rng.Intn(len(descriptions))]
	tier := priceTiers[rng.Intn(len(priceTiers))]
	price := math.Round((tier[0]+rng.Float64()*(tier[1]-tier[0]))*100) / 100
	active := rng.Intn(4) != 0 // 75% chance of being active

	return models.ItemPatch{
		Name:        &name,
		Description: &description,
		Price:       &price,
		IsActive:    &active,
	}
}

// seed creates count randomized items through the selected store and
// reports each creation plus a final summary.
func seed(ctx context.Context, out io.Writer, store storage.Store, rng *rand.Rand, count int) error {
	created := make([]*models.Item, 0, count)

	for i := 0; i < count; i++ {
		item, err := store.Create(ctx, randomPatch(rng, i+1))
		if err != nil {
			return err
		}
		created = append(created, item)
		fmt.Fprintf(out, "Created item: %s - $%.2f\n", item.Name, *item.Price)
	}

	var totalValue float64
	activeItems := 0
	for _, item := range created {
		if item.Price != nil {
			totalValue += *item.Price
		}
		if item.IsActive {
			activeItems++
		}
	}

	fmt.Fprintf(out, "\nSuccessfully created %d dummy items!\n", len(created))
	fmt.Fprintf(out, "Total items: %d\n", len(created))
	fmt.Fprintf(out, "Active items: %d\n", activeItems)
	fmt.Fprintf(out, "Total value: $%.2f\n", totalValue)

	fmt.Fprintln(out, "\nSample items created:")
	for i, item := range created {
		if i == 5 {
			break
		}
		status := "Active"
		if !item.IsActive {
			status = "Inactive"
		}
		fmt.Fprintf(out, "  - %s - $%.2f (%s)\n", item.Name, *item.Price, status)
	}
	return nil
}
