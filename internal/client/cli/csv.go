package cli

import (
	"context"
	"fmt"
	"os"

	"stockroom/internal/csvx"
)

// Export fetches the current collection and writes it to a CSV file.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: export <file.csv>")
		return nil
	}

	ps, err := a.client.ListProducts(ctx)
	if err != nil {
		err = a.refreshAuth(err)
		fmt.Println("export failed:", err)
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Println("export failed:", err)
		return err
	}
	defer f.Close()

	if err := csvx.Write(f, ps); err != nil {
		fmt.Println("export failed:", err)
		return err
	}
	fmt.Printf("Exported %d products to %s\n", len(ps), args[0])
	return nil
}

// Import parses a CSV file in the export shape and issues one create call
// per row. Rows the server rejects are reported and skipped; the rest are
// still imported.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: import <file.csv>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Println("import failed:", err)
		return err
	}
	defer f.Close()

	inputs, err := csvx.Read(f)
	if err != nil {
		fmt.Println("import failed:", err)
		return err
	}

	created := 0
	for i, in := range inputs {
		if _, err := a.client.CreateProduct(ctx, in); err != nil {
			err = a.refreshAuth(err)
			fmt.Printf("row %d (%s): %v\n", i+2, in.Name, err)
			continue
		}
		created++
	}
	fmt.Printf("Imported %d of %d products\n", created, len(inputs))
	return nil
}
