package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
	"github.com/sakshidhaba/pos-api/internal/domain/enum"
)

var now = time.Date(2024, 6, 15, 20, 0, 0, 0, time.Local)

func bill(id string, at time.Time, mode enum.PaymentMode, canceled bool, items ...entity.CartItem) entity.Bill {
	var total entity.Paise
	for _, it := range items {
		total += it.Total()
	}
	return entity.Bill{
		ID:          id,
		Timestamp:   at,
		Items:       items,
		SubTotal:    total,
		Total:       total,
		PaymentMode: mode,
		IsPaid:      mode != enum.PaymentModeUdhari,
		IsCanceled:  canceled,
	}
}

func line(id, name, category string, rupees float64, qty int) entity.CartItem {
	return entity.CartItem{
		MenuItem: entity.MenuItem{ID: id, Name: name, Price: entity.PaiseFromRupees(rupees), Category: category},
		Quantity: qty,
	}
}

func sampleBills() []entity.Bill {
	return []entity.Bill{
		bill("1", now.Add(-2*time.Hour), enum.PaymentModeCash, false,
			line("m1", "Dal Fry", "Veg", 120, 2)),
		bill("2", now.Add(-1*time.Hour), enum.PaymentModeOnline, false,
			line("m2", "Chicken Biryani", "Non Veg", 250, 1),
			line("m3", "Coke (750ml)", "Cold Drink", 60, 2)),
		bill("3", now.Add(-30*time.Minute), enum.PaymentModeUdhari, false,
			line("m1", "Dal Fry", "Veg", 120, 1)),
		bill("4", now.Add(-10*time.Minute), enum.PaymentModeCash, true, // canceled
			line("m2", "Chicken Biryani", "Non Veg", 250, 4)),
		bill("5", now.AddDate(0, 0, -3), enum.PaymentModeCash, false,
			line("m1", "Dal Fry", "Veg", 120, 1)),
	}
}

func TestFilter(t *testing.T) {
	bills := sampleBills()

	t.Run("today keeps only today's bills", func(t *testing.T) {
		got := Filter(bills, RangeToday, now)
		assert.Len(t, got, 4)
	})

	t.Run("yesterday is a closed window", func(t *testing.T) {
		got := Filter(bills, RangeYesterday, now)
		assert.Empty(t, got)
	})

	t.Run("week includes the older bill", func(t *testing.T) {
		got := Filter(bills, RangeWeek, now)
		assert.Len(t, got, 5)
	})

	t.Run("all keeps everything", func(t *testing.T) {
		got := Filter(bills, RangeAll, now)
		assert.Len(t, got, len(bills))
	})
}

func TestSummarize(t *testing.T) {
	active := Active(Filter(sampleBills(), RangeAll, now))
	s := Summarize(active)

	// 240 cash + 370 online + 120 udhari + 120 cash; canceled 1000 excluded.
	assert.Equal(t, entity.PaiseFromRupees(850), s.TotalSales)
	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, entity.PaiseFromRupees(360), s.Cash)
	assert.Equal(t, entity.PaiseFromRupees(370), s.Online)
	assert.Equal(t, entity.PaiseFromRupees(120), s.Udhari)
	assert.Equal(t, entity.PaiseFromRupees(730), s.TotalReceived)
	assert.Equal(t, s.TotalSales/4, s.AvgOrderValue)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalSales)
	assert.Zero(t, s.AvgOrderValue, "no division by zero")
}

func TestTrend(t *testing.T) {
	t.Run("single-day ranges produce 24 hourly buckets", func(t *testing.T) {
		active := Active(Filter(sampleBills(), RangeToday, now))
		points := Trend(active, RangeToday)

		require.Len(t, points, 24)
		assert.Equal(t, "00:00", points[0].Label)
		assert.Equal(t, entity.PaiseFromRupees(240), points[now.Add(-2*time.Hour).Hour()].Sales)
	})

	t.Run("longer ranges bucket per day in order", func(t *testing.T) {
		active := Active(Filter(sampleBills(), RangeWeek, now))
		points := Trend(active, RangeWeek)

		require.Len(t, points, 2)
		assert.Equal(t, now.AddDate(0, 0, -3).Format("Jan 2"), points[0].Label)
		assert.Equal(t, entity.PaiseFromRupees(120), points[0].Sales)
		assert.Equal(t, entity.PaiseFromRupees(730), points[1].Sales)
	})
}

func TestPeakHours(t *testing.T) {
	active := Active(Filter(sampleBills(), RangeToday, now))
	points := PeakHours(active)

	require.Len(t, points, 2, "only hours with sales")
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Hour, points[i-1].Hour, "ordered by hour")
	}
}

func TestCategories(t *testing.T) {
	active := Active(sampleBills())
	cats := Categories(active)

	require.Len(t, cats, 3)
	assert.Equal(t, "Veg", cats[0].Category) // 240+120+120 = 480
	assert.Equal(t, entity.PaiseFromRupees(480), cats[0].Revenue)
	assert.Equal(t, "Non Veg", cats[1].Category)
	assert.Equal(t, entity.PaiseFromRupees(250), cats[1].Revenue)
}

func TestItemPerformance(t *testing.T) {
	active := Active(sampleBills())
	items := ItemPerformance(active)

	require.Len(t, items, 3)
	assert.Equal(t, "m1", items[0].ID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, entity.PaiseFromRupees(480), items[0].Revenue)
}

func TestSearchBills(t *testing.T) {
	bills := sampleBills()

	t.Run("newest first including canceled", func(t *testing.T) {
		got := SearchBills(bills, "", "")
		require.Len(t, got, 5)
		assert.Equal(t, "4", got[0].ID)
	})

	t.Run("filters by payment mode", func(t *testing.T) {
		got := SearchBills(bills, "", enum.PaymentModeUdhari)
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("matches bill id substring", func(t *testing.T) {
		got := SearchBills(bills, "2", "")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})
}
