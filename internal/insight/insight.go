// Package insight computes read-only summaries over one dataset snapshot.
// Every summary is re-derived from the full dataset on each call - there
// is no incremental maintenance and nothing is cached across refreshes.
package insight

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"paydash/domain/ledger"
)

// ValueCount is one bucket of a frequency distribution
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Distribution is a frequency distribution ordered by descending count
// (ties broken by value for determinism)
type Distribution []ValueCount

// YearCount is one bucket of a per-year distribution, ordered by year
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// PaymentSummary aggregates one payment dataset snapshot
type PaymentSummary struct {
	TotalRecords      int          `json:"total_records"`
	TotalOrderAmount  float64      `json:"total_order_amount"`
	TotalFinalAmount  float64      `json:"total_final_amount"`
	TotalReceived     float64      `json:"total_received"`
	TotalPending      float64      `json:"total_pending"`
	MeanFinalAmount   float64      `json:"mean_final_amount"`
	MedianFinalAmount float64      `json:"median_final_amount"`
	WorkStatusDist    Distribution `json:"work_status_distribution"`
	PaymentModeDist   Distribution `json:"payment_mode_distribution"`
	YearlyDist        []YearCount  `json:"yearly_distribution"`
}

// ProposalSummary aggregates one proposal dataset snapshot
type ProposalSummary struct {
	TotalProposals    int          `json:"total_proposals"`
	TotalValue        float64      `json:"total_value"`
	MeanValue         float64      `json:"mean_value"`
	MedianValue       float64      `json:"median_value"`
	ApprovedCount     int          `json:"approved_count"`
	FollowUpCount     int          `json:"followup_count"`
	ConversionRate    float64      `json:"conversion_rate"`
	StatusDist        Distribution `json:"status_distribution"`
	PresentStatusDist Distribution `json:"present_status_distribution"`
	IndustryDist      Distribution `json:"industry_distribution"`
	DistrictDist      Distribution `json:"district_distribution"`
	SourceDist        Distribution `json:"source_distribution"`
	YearlyDist        []YearCount  `json:"yearly_distribution"`
}

// SummarizePayments computes the payment KPI block from one snapshot
func SummarizePayments(ds ledger.PaymentDataset) PaymentSummary {
	summary := PaymentSummary{TotalRecords: len(ds.Records)}

	finals := make([]float64, 0, len(ds.Records))
	workStatuses := make([]string, 0, len(ds.Records))
	paymentModes := make([]string, 0, len(ds.Records))
	years := make([]int, 0, len(ds.Records))

	for _, rec := range ds.Records {
		summary.TotalOrderAmount += rec.OrderAmount
		summary.TotalFinalAmount += rec.FinalAmount
		summary.TotalReceived += rec.PaymentReceived
		summary.TotalPending += rec.PendingAmount
		finals = append(finals, rec.FinalAmount)
		workStatuses = append(workStatuses, rec.WorkStatus)
		paymentModes = append(paymentModes, rec.PaymentMode)
		years = append(years, rec.Year)
	}

	if len(finals) > 0 {
		summary.MeanFinalAmount, _ = stats.Mean(finals)
		summary.MedianFinalAmount, _ = stats.Median(finals)
	}

	summary.WorkStatusDist = Distribute(workStatuses)
	summary.PaymentModeDist = Distribute(paymentModes)
	summary.YearlyDist = distributeYears(years)

	return summary
}

// SummarizeProposals computes the proposal KPI block from one snapshot.
// Conversion rate is count(status == "OK") / total * 100, zero on an
// empty dataset.
func SummarizeProposals(ds ledger.ProposalDataset) ProposalSummary {
	summary := ProposalSummary{TotalProposals: len(ds.Records)}

	amounts := make([]float64, 0, len(ds.Records))
	statuses := make([]string, 0, len(ds.Records))
	presentStatuses := make([]string, 0, len(ds.Records))
	industries := make([]string, 0, len(ds.Records))
	districts := make([]string, 0, len(ds.Records))
	sources := make([]string, 0, len(ds.Records))
	years := make([]int, 0, len(ds.Records))

	for _, rec := range ds.Records {
		summary.TotalValue += rec.Amount
		amounts = append(amounts, rec.Amount)
		statuses = append(statuses, rec.Status)
		presentStatuses = append(presentStatuses, rec.PresentStatus)
		industries = append(industries, rec.IndustryType)
		districts = append(districts, rec.District)
		sources = append(sources, rec.Source)
		years = append(years, rec.Year)

		switch strings.ToUpper(rec.Status) {
		case "OK":
			summary.ApprovedCount++
		case "DROP":
			summary.FollowUpCount++
		}
	}

	if len(amounts) > 0 {
		summary.MeanValue, _ = stats.Mean(amounts)
		summary.MedianValue, _ = stats.Median(amounts)
	}
	if summary.TotalProposals > 0 {
		summary.ConversionRate = float64(summary.ApprovedCount) / float64(summary.TotalProposals) * 100
	}

	summary.StatusDist = Distribute(statuses)
	summary.PresentStatusDist = Distribute(presentStatuses)
	summary.IndustryDist = Distribute(industries)
	summary.DistrictDist = Distribute(districts)
	summary.SourceDist = Distribute(sources)
	summary.YearlyDist = distributeYears(years)

	return summary
}

// Distribute builds a frequency distribution over the given values,
// ordered by descending count. Empty values are skipped.
func Distribute(values []string) Distribution {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	dist := make(Distribution, 0, len(counts))
	for value, count := range counts {
		dist = append(dist, ValueCount{Value: value, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Value < dist[j].Value
	})

	return dist
}

func distributeYears(years []int) []YearCount {
	counts := make(map[int]int, len(years))
	for _, y := range years {
		if y == 0 {
			continue
		}
		counts[y]++
	}

	dist := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		dist = append(dist, YearCount{Year: year, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Year < dist[j].Year })

	return dist
}
