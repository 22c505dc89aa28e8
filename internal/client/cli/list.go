package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"stockroom/internal/domain"
)

// viewState holds the active list selections. They persist between list
// calls until changed or reset.
type viewState struct {
	Search   string
	Category string
	Status   string
	SortKey  string // name | price | quantity
	Desc     bool
	Wide     bool // wide mode adds SKU and description columns
}

// List fetches the collection and prints it through the active selections.
//
// Arguments adjust the view state, e.g.:
//
//	list widget                 substring search on name
//	list -category=electronics  filter by category
//	list -status=low            filter by derived status
//	list -sort=price -desc      sort selection
//	list -wide                  wide view mode (SKU, description)
//	list -reset                 clear all selections
func (a *App) List(ctx context.Context, args []string) error {
	for _, arg := range args {
		switch {
		case arg == "-reset":
			a.view = viewState{}
		case arg == "-desc":
			a.view.Desc = true
		case arg == "-asc":
			a.view.Desc = false
		case arg == "-wide":
			a.view.Wide = true
		case arg == "-compact":
			a.view.Wide = false
		case strings.HasPrefix(arg, "-category="):
			a.view.Category = strings.TrimPrefix(arg, "-category=")
		case strings.HasPrefix(arg, "-status="):
			a.view.Status = strings.TrimPrefix(arg, "-status=")
		case strings.HasPrefix(arg, "-sort="):
			a.view.SortKey = strings.TrimPrefix(arg, "-sort=")
		default:
			a.view.Search = arg
		}
	}

	ps, err := a.client.ListProducts(ctx)
	if err != nil {
		err = a.refreshAuth(err)
		fmt.Println("list failed:", err)
		return err
	}
	a.products = ps

	shown := filterSort(ps, a.view)
	printProducts(shown, a.view)
	return nil
}

// filterSort applies the view selections to a fetched collection. Pure so it
// is easy to test.
func filterSort(ps []domain.ProductView, v viewState) []domain.ProductView {
	out := make([]domain.ProductView, 0, len(ps))
	for _, p := range ps {
		if v.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(v.Search)) {
			continue
		}
		if v.Category != "" && !strings.EqualFold(p.Category, v.Category) {
			continue
		}
		if v.Status != "" && !strings.EqualFold(p.Status, v.Status) {
			continue
		}
		out = append(out, p)
	}

	less := func(i, j int) bool { return out[i].Name < out[j].Name }
	switch v.SortKey {
	case "price":
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case "quantity":
		less = func(i, j int) bool { return out[i].Quantity < out[j].Quantity }
	}
	if v.Desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

func printProducts(ps []domain.ProductView, v viewState) {
	if len(ps) == 0 {
		fmt.Println("No products match the current view")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if v.Wide {
		fmt.Fprintln(w, "ID\tNAME\tSKU\tCATEGORY\tPRICE\tQTY\tSTATUS\tTOTAL\tDESCRIPTION")
		for _, p := range ps {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\t%s\t%.2f\t%s\n",
				p.ID, p.Name, p.SKU, p.Category, p.Price, p.Quantity, p.Status, p.TotalValue, p.Description)
		}
	} else {
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tQTY\tSTATUS\tTOTAL")
		for _, p := range ps {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%s\t%.2f\n",
				p.ID, p.Name, p.Category, p.Price, p.Quantity, p.Status, p.TotalValue)
		}
	}
	w.Flush()
	if v != (viewState{}) {
		fmt.Println("(filtered view; 'list -reset' to clear)")
	}
}
