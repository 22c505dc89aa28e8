// Package csvx encodes and decodes product collections as CSV.
// encoding/csv handles quoting, so names containing commas or quotes
// survive a round trip.
package csvx

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"stockroom/internal/domain"
	"stockroom/internal/services"
)

// Header is the fixed export header row.
var Header = []string{"ID", "Name", "Price", "Quantity", "Description", "Category", "Status"}

// Write serializes the collection, one row per product, derived status
// included.
func Write(w io.Writer, products []domain.ProductView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range products {
		row := []string{
			p.ID,
			p.Name,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
			p.Description,
			p.Category,
			p.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses rows in the export shape back into create inputs. ID and
// Status columns are ignored: the server assigns ids and status is derived.
func Read(r io.Reader) ([]services.ProductInput, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(Header) {
		return nil, fmt.Errorf("unexpected header shape: want %d columns, got %d", len(Header), len(header))
	}

	var out []services.ProductInput
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q", line, row[2])
		}
		qty, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad quantity %q", line, row[3])
		}
		out = append(out, services.ProductInput{
			Name:        row[1],
			Price:       price,
			Quantity:    qty,
			Description: row[4],
			Category:    row[5],
		})
	}
	return out, nil
}
