package csvx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain"
)

func view(name string, price float64, qty int) domain.ProductView {
	p := domain.Product{ID: "id-" + name, Name: name, Price: price, Quantity: qty, Category: "electronics"}
	return p.View()
}

func TestRoundTripPreservesTuples(t *testing.T) {
	in := []domain.ProductView{
		view("Widget", 9.99, 5),
		view("Gadget", 24.5, 42),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for i, p := range in {
		assert.Equal(t, p.Name, out[i].Name)
		assert.Equal(t, p.Price, out[i].Price)
		assert.Equal(t, p.Quantity, out[i].Quantity)
	}
}

func TestQuotedFieldsSurvive(t *testing.T) {
	p := domain.Product{
		ID:       "x",
		Name:     `Widget, "Deluxe" edition`,
		Price:    1.5,
		Quantity: 3,
		Category: "misc",
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []domain.ProductView{p.View()}))

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, p.Name, out[0].Name)
}

func TestHeaderShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "ID,Name,Price,Quantity,Description,Category,Status", strings.TrimSpace(buf.String()))
}

func TestReadRejectsBadHeader(t *testing.T) {
	_, err := Read(strings.NewReader("Name,Price\nWidget,1\n"))
	assert.Error(t, err)
}

func TestReadRejectsBadNumbers(t *testing.T) {
	csv := "ID,Name,Price,Quantity,Description,Category,Status\nx,Widget,cheap,5,,misc,low\n"
	_, err := Read(strings.NewReader(csv))
	assert.Error(t, err)
}
