package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"stockroom/internal/client/api"
	"stockroom/internal/services"
)

// Add prompts for product fields and creates the record on the server.
// The server's canonical record (id, timestamps, derived fields) is what
// gets reported back; nothing is synthesized locally.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	priceRaw, err := GetSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		fmt.Println("price must be a number")
		return err
	}
	qtyRaw, err := GetSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		fmt.Println("quantity must be a whole number")
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", os.Stdout)
	if err != nil {
		return err
	}
	sku, err := GetSimpleText(a.reader, "SKU (optional)", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.client.CreateProduct(ctx, services.ProductInput{
		Name:        name,
		Price:       price,
		Quantity:    qty,
		Description: desc,
		Category:    category,
		SKU:         sku,
	})
	if err != nil {
		err = a.refreshAuth(err)
		fmt.Println("add failed:", err)
		return err
	}
	fmt.Printf("Created %s (%s), status %s\n", p.Name, p.ID, p.Status)
	return nil
}

// Edit prompts for new values for a product; empty input keeps the stored
// value. Only the touched fields go into the patch.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: edit <id>")
		return nil
	}
	id := args[0]

	var patch services.ProductPatch
	if v, err := GetSimpleText(a.reader, "Name (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		patch.Name = &v
	}
	if v, err := GetSimpleText(a.reader, "Price (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Println("price must be a number")
			return err
		}
		patch.Price = &price
	}
	if v, err := GetSimpleText(a.reader, "Quantity (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("quantity must be a whole number")
			return err
		}
		patch.Quantity = &qty
	}
	if v, err := GetSimpleText(a.reader, "Description (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		patch.Description = &v
	}
	if v, err := GetSimpleText(a.reader, "Category (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		patch.Category = &v
	}

	p, err := a.client.UpdateProduct(ctx, id, patch)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Println("no product with id", id)
			return err
		}
		err = a.refreshAuth(err)
		fmt.Println("edit failed:", err)
		return err
	}
	fmt.Printf("Updated %s, status %s, total value %.2f\n", p.Name, p.Status, p.TotalValue)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: delete <id>")
		return nil
	}
	id := args[0]
	if err := a.client.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Println("no product with id", id)
			return err
		}
		err = a.refreshAuth(err)
		fmt.Println("delete failed:", err)
		return err
	}
	fmt.Println("Deleted", id)
	return nil
}
