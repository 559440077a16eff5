package service

import (
	"sort"

	"zerodefect-backend/models"
)

// CountEntry is one labelled bucket in a dashboard chart.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// InquiriesByCountry buckets inquiries per country, largest first.
func InquiriesByCountry(items []models.Inquiry) []CountEntry {
	buckets := map[string]int{}
	for _, it := range items {
		buckets[it.Country]++
	}
	return sortedEntries(buckets, true)
}

// OrdersPerDay buckets orders by creation date, oldest day first.
func OrdersPerDay(items []models.Order) []CountEntry {
	buckets := map[string]int{}
	for _, it := range items {
		buckets[it.CreatedAt.Format("2006-01-02")]++
	}
	return sortedEntries(buckets, false)
}

// ProductPopularity counts how often each product name appears across
// inquiries, largest first.
func ProductPopularity(items []models.Inquiry) []CountEntry {
	buckets := map[string]int{}
	for _, it := range items {
		buckets[it.Product]++
	}
	return sortedEntries(buckets, true)
}

func sortedEntries(buckets map[string]int, byCount bool) []CountEntry {
	entries := make([]CountEntry, 0, len(buckets))
	for label, count := range buckets {
		entries = append(entries, CountEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if byCount && entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
