package service

import (
	"context"
	"fmt"
	"time"
)

// LowStockThreshold: a product with fewer units than this on hand
// triggers a notification. 10 itself is fine, 9 is not.
const LowStockThreshold = 10

const NoAlertsMessage = "You have no new notifications"

func isLowStock(qty int64) bool {
	return qty < LowStockThreshold
}

func lowStockMessage(name string, qty int64) string {
	return fmt.Sprintf("%s is low on stock: %d left", name, qty)
}

// assembleNotifications flattens the three checks in fixed order: stock,
// then overdue sales credits, then overdue buy credits. No dedup, no
// ranking. Empty input collapses to the sentinel message.
func assembleNotifications(stock, sales, buy []string) []string {
	msgs := make([]string, 0, len(stock)+len(sales)+len(buy))
	msgs = append(msgs, stock...)
	msgs = append(msgs, sales...)
	msgs = append(msgs, buy...)
	if len(msgs) == 0 {
		return []string{NoAlertsMessage}
	}
	return msgs
}

type lowStockRow struct {
	Name     string
	Quantity int64
}

// Notifications runs the overdue sweep, then combines low-stock and
// overdue-credit alerts into one ordered list. Called per request; there
// is no background scheduler.
func (s *Service) Notifications(ctx context.Context) ([]string, error) {
	if err := s.SweepOverdue(ctx, time.Now()); err != nil {
		return nil, err
	}

	var rows []lowStockRow
	if err := s.db.WithContext(ctx).
		Table("product_stocks").
		Select("product_types.name AS name, product_stocks.quantity AS quantity").
		Joins("INNER JOIN product_types ON product_types.id = product_stocks.product_type_id").
		Where("product_stocks.quantity < ? AND product_types.is_active = true", LowStockThreshold).
		Order("product_stocks.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stock := make([]string, 0, len(rows))
	for _, r := range rows {
		stock = append(stock, lowStockMessage(r.Name, r.Quantity))
	}

	sales, buy, err := s.OverdueMessages(ctx)
	if err != nil {
		return nil, err
	}

	return assembleNotifications(stock, sales, buy), nil
}
