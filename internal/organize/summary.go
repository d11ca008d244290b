package organize

// Summary aggregates the outcome of one run. Built fresh per invocation,
// never persisted.
type Summary struct {
	// Categories holds category names in declaration order, Others last
	// unless explicitly declared. Rendering follows this order.
	Categories []string `json:"categories"`
	// Counts maps category name to files placed (or, in dry-run, files
	// that would be placed). Seeded with zero for every known category.
	Counts map[string]int `json:"counts"`
	// Processed is the number of files attempted, successful or not.
	Processed int `json:"processed"`
	// Failed counts per-file move failures; failed files appear in no
	// category count.
	Failed int `json:"failed"`
	// Partial reports that the preview limit cut enumeration short.
	Partial bool `json:"partial"`
	// DryRun reports that no mutation happened.
	DryRun bool `json:"dry_run"`
}

func newSummary(categories []string, dryRun bool) *Summary {
	counts := make(map[string]int, len(categories))
	for _, name := range categories {
		counts[name] = 0
	}
	return &Summary{
		Categories: categories,
		Counts:     counts,
		DryRun:     dryRun,
	}
}

func (s *Summary) add(category string) {
	if _, ok := s.Counts[category]; !ok {
		s.Categories = append(s.Categories, category)
	}
	s.Counts[category]++
}

// Placed returns the total number of files counted into categories.
func (s *Summary) Placed() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}
