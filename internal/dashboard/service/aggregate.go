package service

import (
	"slices"
	"time"

	"payzee/internal/backend"
	"payzee/internal/chart"
	"payzee/internal/dashboard/models"
	schemeModels "payzee/internal/scheme/models"
	schemeService "payzee/internal/scheme/service"
	txModels "payzee/internal/transaction/models"
	"payzee/pkg/platform/format"
)

const (
	monthsShown        = 12
	recentTransactions = 5
	recentSchemes      = 3
)

// Aggregate derives the dashboard from the fetched collections. now fixes
// the last month of the monthly series.
func Aggregate(schemes []backend.Scheme, citizens []backend.Citizen, txs []backend.Transaction, now time.Time) (*models.Dashboard, error) {
	stats := models.Stats{
		TotalSchemes:       len(schemes),
		TotalBeneficiaries: countBeneficiaries(citizens),
		SchemesByTag:       countTags(schemes),
		Monthly:            monthlyDisbursed(txs, now),
	}
	for _, s := range schemes {
		stats.TotalFundAllocated += s.Amount
	}
	stats.PendingApprovals = countStatus(schemes, schemeModels.StatusPending)
	stats.TotalFundLabel = format.Rupees(stats.TotalFundAllocated)

	charts, err := buildCharts(stats, schemes)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		Stats:              stats,
		Charts:             charts,
		RecentTransactions: latestTransactions(txs, recentTransactions),
		RecentSchemes:      latestSchemes(schemes, recentSchemes),
	}, nil
}

func countBeneficiaries(citizens []backend.Citizen) int {
	n := 0
	for _, c := range citizens {
		if c.IsBeneficiary() {
			n++
		}
	}
	return n
}

// countTags counts schemes per tag, in the order tags are first seen.
func countTags(schemes []backend.Scheme) []models.TagCount {
	counts := []models.TagCount{}
	index := map[string]int{}
	for _, s := range schemes {
		for _, tag := range s.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, models.TagCount{Tag: tag, Count: 1})
		}
	}
	return counts
}

// monthlyDisbursed sums completed government-to-citizen transfers per
// calendar month (UTC) for the twelve months ending with now's month,
// oldest first.
func monthlyDisbursed(txs []backend.Transaction, now time.Time) []models.MonthlyAmount {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]models.MonthlyAmount, monthsShown)
	index := make(map[time.Time]int, monthsShown)
	for i := range monthsShown {
		start := current.AddDate(0, i-(monthsShown-1), 0)
		months[i] = models.MonthlyAmount{Month: format.Month(start), Year: start.Year()}
		index[start] = i
	}

	for _, tx := range txs {
		if tx.TxType != backend.TxGovernmentToCitizen || tx.Status != backend.TxStatusCompleted {
			continue
		}
		ts := tx.Timestamp.UTC()
		key := time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
		if i, ok := index[key]; ok {
			months[i].Amount += tx.Amount
		}
	}
	return months
}

func latestTransactions(txs []backend.Transaction, n int) []txModels.Row {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b backend.Transaction) int {
		return b.Timestamp.Compare(a.Timestamp.Time)
	})
	rows := make([]txModels.Row, 0, n)
	for _, tx := range sorted[:min(n, len(sorted))] {
		rows = append(rows, txModels.FromBackend(tx))
	}
	return rows
}

func latestSchemes(schemes []backend.Scheme, n int) []schemeModels.Row {
	sorted := slices.Clone(schemes)
	slices.SortStableFunc(sorted, func(a, b backend.Scheme) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	rows := make([]schemeModels.Row, 0, n)
	for _, s := range sorted[:min(n, len(sorted))] {
		rows = append(rows, schemeModels.RowFromScheme(schemeService.FromBackend(s)))
	}
	return rows
}

func buildCharts(stats models.Stats, schemes []backend.Scheme) (models.Charts, error) {
	monthLabels := make([]string, 0, len(stats.Monthly))
	amounts := make([]float64, 0, len(stats.Monthly))
	for _, m := range stats.Monthly {
		monthLabels = append(monthLabels, m.Month)
		amounts = append(amounts, m.Amount)
	}
	funds, err := chart.Line("Funds Distributed", monthLabels, chart.Series{Label: "Funds Distributed", Values: amounts})
	if err != nil {
		return models.Charts{}, err
	}

	tagLabels := make([]string, 0, len(stats.SchemesByTag))
	tagCounts := make([]float64, 0, len(stats.SchemesByTag))
	for _, t := range stats.SchemesByTag {
		tagLabels = append(tagLabels, t.Tag)
		tagCounts = append(tagCounts, float64(t.Count))
	}
	tags, err := chart.Pie("Schemes by Category", tagLabels, tagCounts)
	if err != nil {
		return models.Charts{}, err
	}

	statuses := []schemeModels.Status{schemeModels.StatusActive, schemeModels.StatusPending, schemeModels.StatusInactive}
	statusLabels := make([]string, len(statuses))
	statusCounts := make([]float64, len(statuses))
	for i, st := range statuses {
		statusLabels[i] = string(st)
		statusCounts[i] = float64(countStatus(schemes, st))
	}
	byStatus, err := chart.Bar("Schemes by Status", statusLabels, chart.Series{Label: "Schemes", Values: statusCounts})
	if err != nil {
		return models.Charts{}, err
	}

	return models.Charts{MonthlyFunds: funds, SchemesByTag: tags, SchemesByStatus: byStatus}, nil
}

func countStatus(schemes []backend.Scheme, status schemeModels.Status) int {
	n := 0
	for _, s := range schemes {
		if st, ok := schemeModels.ParseStatus(s.Status); ok && st == status {
			n++
		}
	}
	return n
}
