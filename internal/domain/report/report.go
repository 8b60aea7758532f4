// Package report derives read-only analytics from the bill list.
//
// Everything here is a pure function of (bills, range, now): recomputed
// on demand, never stored. Canceled bills are excluded from every money
// aggregate but still appear, flagged, in transaction listings.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
)

// Range selects the reporting window relative to "now".
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeWeek      Range = "week"  // last 7 days
	RangeMonth     Range = "month" // last 30 days
	RangeYear      Range = "year"  // calendar year to date
	RangeAll       Range = "all"
)

// ParseRange maps a query value to a Range, defaulting to today.
func ParseRange(s string) Range {
	switch Range(strings.ToLower(s)) {
	case RangeYesterday:
		return RangeYesterday
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	case RangeYear:
		return RangeYear
	case RangeAll:
		return RangeAll
	default:
		return RangeToday
	}
}

// Filter returns the bills whose timestamp falls inside the range.
func Filter(bills []entity.Bill, r Range, now time.Time) []entity.Bill {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch r {
	case RangeToday:
		start = startOfToday
	case RangeYesterday:
		start = startOfToday.AddDate(0, 0, -1)
		end = startOfToday
	case RangeWeek:
		start = now.AddDate(0, 0, -7)
	case RangeMonth:
		start = now.AddDate(0, 0, -30)
	case RangeYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	case RangeAll:
		// no bounds
	}

	out := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		if !start.IsZero() && b.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !b.Timestamp.Before(end) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Active strips canceled bills.
func Active(bills []entity.Bill) []entity.Bill {
	out := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		if !b.IsCanceled {
			out = append(out, b)
		}
	}
	return out
}

// Summary holds the headline numbers for a reporting window.
type Summary struct {
	TotalSales    entity.Paise `json:"total_sales"`
	TotalOrders   int          `json:"total_orders"`
	AvgOrderValue entity.Paise `json:"avg_order_value"`
	Cash          entity.Paise `json:"cash"`
	Online        entity.Paise `json:"online"`
	Udhari        entity.Paise `json:"udhari"`
	TotalReceived entity.Paise `json:"total_received"` // cash + online
}

// Summarize computes totals over active bills.
func Summarize(active []entity.Bill) Summary {
	var s Summary
	for _, b := range active {
		s.TotalSales += b.Total
		s.TotalOrders++
		switch b.PaymentMode {
		case enum.PaymentModeCash:
			s.Cash += b.Total
		case enum.PaymentModeOnline:
			s.Online += b.Total
		case enum.PaymentModeUdhari:
			s.Udhari += b.Total
		}
	}
	s.TotalReceived = s.Cash + s.Online
	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalSales / entity.Paise(s.TotalOrders)
	}
	return s
}

// TrendPoint is one bucket in the sales trend series.
type TrendPoint struct {
	Label string       `json:"label"`
	Sales entity.Paise `json:"sales"`
}

// Trend buckets active bills into a time series. Single-day ranges
// (today, yesterday) get all 24 hourly buckets, zero-filled so a chart
// renders a full day; longer ranges get one bucket per calendar day
// that saw sales, in chronological order.
func Trend(active []entity.Bill, r Range) []TrendPoint {
	if r == RangeToday || r == RangeYesterday {
		var hours [24]entity.Paise
		for _, b := range active {
			hours[b.Timestamp.Hour()] += b.Total
		}
		out := make([]TrendPoint, 24)
		for h := 0; h < 24; h++ {
			out[h] = TrendPoint{Label: time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"), Sales: hours[h]}
		}
		return out
	}

	type dayBucket struct {
		day   time.Time
		sales entity.Paise
	}
	byDay := make(map[string]*dayBucket)
	for _, b := range active {
		ts := b.Timestamp
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		key := ts.Format("2006-01-02")
		if bk, ok := byDay[key]; ok {
			bk.sales += b.Total
		} else {
			byDay[key] = &dayBucket{day: day, sales: b.Total}
		}
	}
	buckets := make([]*dayBucket, 0, len(byDay))
	for _, bk := range byDay {
		buckets = append(buckets, bk)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].day.Before(buckets[j].day) })

	out := make([]TrendPoint, len(buckets))
	for i, bk := range buckets {
		out[i] = TrendPoint{Label: bk.day.Format("Jan 2"), Sales: bk.sales}
	}
	return out
}

// HourPoint is sales volume for one hour of the day.
type HourPoint struct {
	Hour  int          `json:"hour"`
	Label string       `json:"label"` // "12 AM", "1 PM", ...
	Sales entity.Paise `json:"sales"`
}

// PeakHours returns per-hour sales for hours that saw any business,
// ordered by hour of day.
func PeakHours(active []entity.Bill) []HourPoint {
	var hours [24]entity.Paise
	for _, b := range active {
		hours[b.Timestamp.Hour()] += b.Total
	}
	out := make([]HourPoint, 0, 24)
	for h := 0; h < 24; h++ {
		if hours[h] == 0 {
			continue
		}
		out = append(out, HourPoint{Hour: h, Label: hourLabel(h), Sales: hours[h]})
	}
	return out
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h == 12:
		return "12 PM"
	case h > 12:
		return time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("3 PM")
	default:
		return time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("3 AM")
	}
}

// CategoryPoint is revenue attributed to one menu category.
type CategoryPoint struct {
	Category string       `json:"category"`
	Revenue  entity.Paise `json:"revenue"`
}

// Categories sums line-item revenue per category, highest first.
func Categories(active []entity.Bill) []CategoryPoint {
	byCat := make(map[string]entity.Paise)
	for _, b := range active {
		for _, it := range b.Items {
			byCat[it.Category] += it.Total()
		}
	}
	out := make([]CategoryPoint, 0, len(byCat))
	for cat, rev := range byCat {
		out = append(out, CategoryPoint{Category: cat, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ItemStat is the sales performance of one menu item.
type ItemStat struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Quantity int          `json:"quantity"`
	Revenue  entity.Paise `json:"revenue"`
}

// ItemPerformance aggregates quantity and revenue per item id across
// active bills, highest revenue first. Items are keyed by the menu id
// captured in the bill snapshot, so a renamed item keeps its stats.
func ItemPerformance(active []entity.Bill) []ItemStat {
	byID := make(map[string]*ItemStat)
	order := make([]string, 0)
	for _, b := range active {
		for _, it := range b.Items {
			st, ok := byID[it.ID]
			if !ok {
				st = &ItemStat{ID: it.ID, Name: it.Name, Category: it.Category}
				byID[it.ID] = st
				order = append(order, it.ID)
			}
			st.Quantity += it.Quantity
			st.Revenue += it.Total()
		}
	}
	out := make([]ItemStat, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// SearchBills filters bills (canceled included) by a free-text query
// against bill id, customer name and table number, optionally narrowed
// to one payment mode, newest first.
func SearchBills(bills []entity.Bill, query string, mode enum.PaymentMode) []entity.Bill {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		if mode != "" && b.PaymentMode != mode {
			continue
		}
		if q != "" {
			match := strings.Contains(strings.ToLower(b.ID), q) ||
				strings.Contains(strings.ToLower(b.CustomerName), q) ||
				strings.Contains(strings.ToLower(b.TableNo), q)
			if !match {
				continue
			}
		}
		out = append(out, b)
	}
	// Bills are appended chronologically; listings read newest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
