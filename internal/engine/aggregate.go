package engine

import (
	"fmt"
	"sort"

	"github.com/nbendourou/Money-Manager/internal/model"
)

// computeKpis sums the filtered set by type in a single pass.
func computeKpis(filtered []model.Transaction) model.Kpis {
	var k model.Kpis
	for _, t := range filtered {
		switch t.Type {
		case model.TypeRevenue:
			k.TotalRevenue += t.Amount
		case model.TypeExpense:
			k.TotalExpenses += t.Amount
		case model.TypeSavings:
			k.TotalSavings += t.Amount
		}
	}
	k.NetBalance = k.TotalRevenue - k.TotalExpenses - k.TotalSavings
	if k.TotalRevenue > 0 {
		k.SavingsRate = k.TotalSavings / k.TotalRevenue * 100
	}
	return k
}

// monthlySeries groups the filtered set by "YYYY-MM". Only months with
// at least one transaction appear; the zero-padded key sorts
// lexicographically in chronological order.
func monthlySeries(filtered []model.Transaction) []model.MonthlyPoint {
	byMonth := make(map[string]*model.MonthlyPoint)
	for _, t := range filtered {
		key := fmt.Sprintf("%04d-%02d", t.Date.Year(), int(t.Date.Month()))
		point, ok := byMonth[key]
		if !ok {
			point = &model.MonthlyPoint{Name: key}
			byMonth[key] = point
		}
		switch t.Type {
		case model.TypeRevenue:
			point.Revenus += t.Amount
		case model.TypeExpense:
			point.Depenses += t.Amount
		case model.TypeSavings:
			point.Epargne += t.Amount
		}
	}

	series := make([]model.MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Name < series[j].Name })
	return series
}

// sumByCategory aggregates one transaction type by category key, sorted
// descending by summed amount. Categories tied on amount keep their
// first-seen order, so the result is deterministic for a given input
// ordering.
func sumByCategory(filtered []model.Transaction, txType model.TransactionType) []model.CategoryPoint {
	sums := make(map[string]float64)
	var order []string
	for _, t := range filtered {
		if t.Type != txType {
			continue
		}
		key := t.CategoryKey()
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += t.Amount
	}

	points := make([]model.CategoryPoint, 0, len(order))
	for _, key := range order {
		points = append(points, model.CategoryPoint{Name: key, Value: sums[key]})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })
	return points
}

// topN truncates a sorted distribution to its n largest entries. There
// is deliberately no "Others" bucket here: entries beyond n are dropped.
func topN(points []model.CategoryPoint, n int) []model.CategoryPoint {
	if len(points) <= n {
		return points
	}
	return points[:n]
}

// categoryNames returns the sorted distinct category keys of one type,
// for filter UIs.
func categoryNames(filtered []model.Transaction, txType model.TransactionType) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range filtered {
		if t.Type != txType {
			continue
		}
		if key := t.CategoryKey(); !seen[key] {
			seen[key] = true
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}
