package analytics

import (
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
)

// revenueMethodology labels the heuristic figures so dashboard consumers do
// not mistake them for cohort-accurate accounting.
var revenueMethodology = map[string]string{
	"mrr":        "sum of all plan-tagged payments, not period-bounded",
	"clv":        "average order value x (payments/30) x 12-month assumed lifespan",
	"churn_rate": "cancellations over all-time payment count, not active subscribers",
}

// RevenueAnalytics derives the revenue report from all payment-category
// events ever recorded. Only daily revenue and growth are time-bounded.
func (e *Engine) RevenueAnalytics() *dto.RevenueAnalytics {
	now := e.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var dailyRevenue, mrr, totalRevenue float64
	var payments, cancellations int
	var thisMonthPayments, lastMonthPayments int
	byCountry := make(map[string]float64)
	byPlan := make(map[string]float64)
	sessions := make(map[string]bool)

	for _, ev := range e.events.Snapshot() {
		if ev.SessionID != "" {
			sessions[ev.SessionID] = true
		}

		if ev.Category != domain.CategoryPayment {
			continue
		}

		switch ev.EventName {
		case "payment_completed":
			amount, _ := ev.Properties.Number("amount")
			payments++
			totalRevenue += amount

			if !ev.Timestamp.Before(startOfDay) {
				dailyRevenue += amount
			}
			if !ev.Timestamp.Before(thisMonth) {
				thisMonthPayments++
			} else if !ev.Timestamp.Before(lastMonth) {
				lastMonthPayments++
			}

			plan, hasPlan := ev.Properties.String("plan")
			if hasPlan {
				mrr += amount
			} else {
				plan = "Unknown"
			}
			byPlan[plan] += amount

			country := ev.Country
			if country == "" {
				country = "Unknown"
			}
			byCountry[country] += amount

		case "subscription_cancelled":
			cancellations++
		}
	}

	aov := mean(totalRevenue, payments)
	clv := aov * (float64(payments) / 30) * 12

	var churn float64
	if payments > 0 {
		churn = float64(cancellations) / float64(payments) * 100
	}

	var conversion float64
	if len(sessions) > 0 {
		conversion = float64(payments) / float64(len(sessions)) * 100
	}

	// Zero last-month payments yields 0, which is a guard value rather than
	// a real flat-growth signal.
	var growth float64
	if lastMonthPayments > 0 {
		growth = float64(thisMonthPayments-lastMonthPayments) / float64(lastMonthPayments) * 100
	}

	return &dto.RevenueAnalytics{
		DailyRevenue:      dailyRevenue,
		MRR:               mrr,
		CLV:               clv,
		ChurnRate:         churn,
		ConversionRate:    conversion,
		AverageOrderValue: aov,
		GrowthRate:        growth,
		RevenueByCountry:  byCountry,
		RevenueByPlan:     byPlan,
		Methodology:       revenueMethodology,
	}
}
