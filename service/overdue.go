package service

import (
	"context"
	"fmt"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

// startOfDay truncates t to local midnight. A credit is overdue once its
// return date falls before the start of today.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isPastDue(returnDate, cutoff time.Time) bool {
	return returnDate.Before(cutoff)
}

func salesOverdueMessage(name string, amount int64) string {
	return fmt.Sprintf("%s owes %d on an overdue sales credit", name, amount)
}

func buyOverdueMessage(name string, amount int64) string {
	return fmt.Sprintf("%s is owed %d on an overdue purchase credit", name, amount)
}

// SweepOverdue reclassifies active credits whose return date has passed.
// Set-based and idempotent: records already OVERDUE or PAID are left
// alone, so re-running with no newly-due records changes nothing.
func (s *Service) SweepOverdue(ctx context.Context, now time.Time) error {
	cutoff := startOfDay(now)
	db := s.db.WithContext(ctx)

	res := db.Model(&models.SalesCredit{}).
		Where("is_active = true AND status NOT IN ? AND return_date < ?",
			[]models.CreditStatus{models.CreditOverdue, models.CreditPaid}, cutoff).
		Update("status", models.CreditOverdue)
	if res.Error != nil {
		return res.Error
	}
	salesFlagged := res.RowsAffected

	res = db.Model(&models.BuyCredit{}).
		Where("is_active = true AND status NOT IN ? AND return_date < ?",
			[]models.CreditStatus{models.CreditOverdue, models.CreditPaid}, cutoff).
		Update("status", models.CreditOverdue)
	if res.Error != nil {
		return res.Error
	}

	if salesFlagged > 0 || res.RowsAffected > 0 {
		s.log.Info().
			Int64("sales_flagged", salesFlagged).
			Int64("buy_flagged", res.RowsAffected).
			Msg("overdue sweep flagged credits")
	}
	return nil
}

// OverdueMessages renders one line per active OVERDUE credit, sales
// first, ordered by id.
func (s *Service) OverdueMessages(ctx context.Context) (sales []string, buy []string, err error) {
	db := s.db.WithContext(ctx)

	var scs []models.SalesCredit
	if err = db.Where("is_active = true AND status = ?", models.CreditOverdue).
		Order("id ASC").Find(&scs).Error; err != nil {
		return nil, nil, err
	}
	for _, cr := range scs {
		sales = append(sales, salesOverdueMessage(cr.CustomerName, cr.TotalMoney))
	}

	var bcs []models.BuyCredit
	if err = db.Where("is_active = true AND status = ?", models.CreditOverdue).
		Order("id ASC").Find(&bcs).Error; err != nil {
		return nil, nil, err
	}
	for _, cr := range bcs {
		buy = append(buy, buyOverdueMessage(cr.SupplierName, cr.TotalMoney))
	}
	return sales, buy, nil
}
