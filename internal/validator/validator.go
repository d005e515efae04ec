// Package validator runs consistency checks over freshly extracted
// invoice records. Failures are warnings: the document was parsed, but
// its figures do not add up and deserve a human look.
package validator

import "telebill/internal/domain"

// Rule is a single built-in consistency check.
type Rule interface {
	Name() string
	Check(rec *domain.InvoiceRecord) []Result
}

// Result is the outcome of one check against one field.
type Result struct {
	RuleName      string `json:"rule_name"`
	FieldPath     string `json:"field_path"`
	Passed        bool   `json:"passed"`
	ExpectedValue string `json:"expected_value,omitempty"`
	ActualValue   string `json:"actual_value,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Status summarizes a whole report.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
)

// Summary holds aggregate counts over a report's results.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
}

// Report is the full outcome of validating one record.
type Report struct {
	Status  Status   `json:"status"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Warnings returns only the failed results.
func (r *Report) Warnings() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}
