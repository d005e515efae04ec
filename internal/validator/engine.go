package validator

import "telebill/internal/domain"

// Engine runs a fixed set of rules over extracted records.
type Engine struct {
	rules []Rule
}

// NewEngine creates an Engine. With no arguments it runs the built-in
// rule set.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = builtinRules()
	}
	return &Engine{rules: rules}
}

func builtinRules() []Rule {
	return []Rule{
		vatReconciliationRule{},
		lineTotalsRule{},
		costCentreCountsRule{},
		invoiceDateRule{},
	}
}

// Validate runs every rule and aggregates the results into a report.
func (e *Engine) Validate(rec *domain.InvoiceRecord) *Report {
	report := &Report{Status: StatusValid}
	for _, rule := range e.rules {
		for _, res := range rule.Check(rec) {
			res.RuleName = rule.Name()
			report.Results = append(report.Results, res)
			report.Summary.Total++
			if res.Passed {
				report.Summary.Passed++
			} else {
				report.Summary.Warnings++
				report.Status = StatusWarning
			}
		}
	}
	return report
}
