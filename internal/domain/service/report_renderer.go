package service

import (
	"time"

	"fogon/internal/domain/entity"
)

// FinancialReport is the input to the on-demand report artifact: the order
// history of the requested window plus the computed total. The rendered
// document is offered as a download and never persisted server-side.
type FinancialReport struct {
	From   time.Time
	To     time.Time
	Orders []*entity.Order
	Total  float64
}

// ReportRenderer renders a financial report into a downloadable document.
type ReportRenderer interface {
	Render(report *FinancialReport) ([]byte, error)
}
