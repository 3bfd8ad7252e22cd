package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

func testCatalog() domain.MenuCatalog {
	return domain.NewMenuCatalog([]*domain.MenuItem{
		{ID: 1, Name: "Маргарита", Price: 12.50, Available: true},
		{ID: 2, Name: "Цезарь", Price: 8.30, Available: true},
		{ID: 3, Name: "Сезонный суп", Price: 6.00, Available: false},
	})
}

func TestPrice_ClientPriceIgnored(t *testing.T) {
	lines := []SubmittedLine{
		{MenuItemID: 1, Quantity: 2, ClientPrice: 0.01},
	}

	order, err := Price(lines, testCatalog(), 0.19)

	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 12.50, order.Lines[0].UnitPrice)
	assert.Equal(t, 25.00, order.Lines[0].LineTotal)
	assert.Equal(t, 25.00, order.Subtotal)
	assert.Equal(t, 4.75, order.Tax)
	assert.Equal(t, 29.75, order.Total)
}

func TestPrice_MultipleLines(t *testing.T) {
	lines := []SubmittedLine{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 2, Quantity: 3},
	}

	order, err := Price(lines, testCatalog(), 0.19)

	require.NoError(t, err)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, 24.90, order.Lines[1].LineTotal)
	assert.Equal(t, 37.40, order.Subtotal)
	assert.Equal(t, 7.11, order.Tax)
	assert.Equal(t, 44.51, order.Total)
}

func TestPrice_UnknownItemRejectsOrder(t *testing.T) {
	lines := []SubmittedLine{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 999, Quantity: 1},
	}

	_, err := Price(lines, testCatalog(), 0.19)

	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestPrice_UnavailableItemRejectsOrder(t *testing.T) {
	lines := []SubmittedLine{
		{MenuItemID: 3, Quantity: 1},
	}

	_, err := Price(lines, testCatalog(), 0.19)

	require.ErrorIs(t, err, ErrItemUnavailable)
}

func TestPrice_QuantityBounds(t *testing.T) {
	_, err := Price([]SubmittedLine{{MenuItemID: 1, Quantity: 0}}, testCatalog(), 0.19)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Price([]SubmittedLine{{MenuItemID: 1, Quantity: 100}}, testCatalog(), 0.19)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Price([]SubmittedLine{{MenuItemID: 1, Quantity: 99}}, testCatalog(), 0.19)
	require.NoError(t, err)
}

func TestPrice_LineCountBounds(t *testing.T) {
	_, err := Price(nil, testCatalog(), 0.19)
	require.ErrorIs(t, err, ErrInvalidLineCount)

	lines := make([]SubmittedLine, domain.MaxOrderLines+1)
	for i := range lines {
		lines[i] = SubmittedLine{MenuItemID: 1, Quantity: 1}
	}
	_, err = Price(lines, testCatalog(), 0.19)
	require.ErrorIs(t, err, ErrInvalidLineCount)
}

func TestPrice_ZeroTaxRate(t *testing.T) {
	lines := []SubmittedLine{{MenuItemID: 2, Quantity: 1}}

	order, err := Price(lines, testCatalog(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0.00, order.Tax)
	assert.Equal(t, order.Subtotal, order.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.006))
	assert.Equal(t, 1.00, Round2(1.004))
	assert.Equal(t, 7.11, Round2(37.40*0.19))
}
