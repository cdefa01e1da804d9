package batch

// FileReport pairs a source file with its batch report.
type FileReport struct {
	Path   string  `json:"path"`
	Report *Report `json:"report"`
}

// Combined totals several per-file reports.
type Combined struct {
	Total  int          `json:"total_questions"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Files  []FileReport `json:"files"`
}

// PassRate is the overall pass percentage, or 0 when there are no questions.
func (c Combined) PassRate() float64 { return percent(c.Passed, c.Total) }

// FailRate is the overall fail percentage, or 0 when there are no questions.
func (c Combined) FailRate() float64 { return percent(c.Failed, c.Total) }

// Combine sums per-file reports, keeping files in the order given. A path
// listed twice appears twice; entries with a nil report are skipped.
func Combine(files []FileReport) Combined {
	c := Combined{Files: make([]FileReport, 0, len(files))}
	for _, f := range files {
		if f.Report == nil {
			continue
		}
		c.Total += f.Report.Total
		c.Passed += f.Report.Passed
		c.Failed += f.Report.Failed
		c.Files = append(c.Files, f)
	}
	return c
}
