package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/Restaurant-BookingService/internal/domain"
)

// SubmittedLine строка заказа в том виде, в котором её прислал клиент
// ClientPrice принимается для совместимости с формой заказа, но не участвует
// ни в одном расчете: цена берется только из каталога
type SubmittedLine struct {
	MenuItemID     int64
	Quantity       int
	ClientPrice    float64
	Customizations []string
}

// PricedOrder результат серверного расчета стоимости заказа
// Единственное денежное представление, которое разрешено сохранять и отправлять в письмах
type PricedOrder struct {
	Lines    []domain.OrderLine
	Subtotal float64
	Tax      float64
	Total    float64
}

// Price пересчитывает заказ строго по авторитетным ценам каталога
//
// Для каждой строки: позиция ищется в каталоге, недоступные и неизвестные
// позиции отклоняют заказ целиком. Присланная клиентом цена отбрасывается -
// она не сравнивается с каталожной и не логируется как значимая.
// Subtotal, Tax и Total округляются до 2 знаков независимо друг от друга
func Price(lines []SubmittedLine, catalog domain.MenuCatalog, taxRate float64) (*PricedOrder, error) {
	if len(lines) < domain.MinOrderLines || len(lines) > domain.MaxOrderLines {
		return nil, fmt.Errorf("%w: got %d, expected %d-%d",
			ErrInvalidLineCount, len(lines), domain.MinOrderLines, domain.MaxOrderLines)
	}

	priced := make([]domain.OrderLine, 0, len(lines))
	subtotal := 0.0

	for _, line := range lines {
		if line.Quantity < domain.MinQuantityPerLine || line.Quantity > domain.MaxQuantityPerLine {
			return nil, fmt.Errorf("%w: item id=%d quantity=%d, expected %d-%d",
				ErrInvalidQuantity, line.MenuItemID, line.Quantity,
				domain.MinQuantityPerLine, domain.MaxQuantityPerLine)
		}

		item, ok := catalog[line.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: item id=%d", ErrItemNotFound, line.MenuItemID)
		}

		if !item.Available {
			return nil, fmt.Errorf("%w: item id=%d (%s)", ErrItemUnavailable, item.ID, item.Name)
		}

		lineTotal := Round2(item.Price * float64(line.Quantity))
		subtotal += item.Price * float64(line.Quantity)

		priced = append(priced, domain.OrderLine{
			MenuItemID:     item.ID,
			Name:           item.Name,
			Quantity:       line.Quantity,
			UnitPrice:      item.Price,
			LineTotal:      lineTotal,
			Customizations: line.Customizations,
		})
	}

	subtotal = Round2(subtotal)
	tax := Round2(subtotal * taxRate)
	total := Round2(subtotal + tax)

	return &PricedOrder{
		Lines:    priced,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}

// Round2 округляет до 2 знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
