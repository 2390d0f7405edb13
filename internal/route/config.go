package route

import (
	"fmt"

	"github.com/hmse-unipi/portal/internal/config"
)

// New returns the route table from config, or DefaultTable when no
// routes are configured.
func New(c *config.Config) (*Table, error) {
	t := DefaultTable()
	if len(c.Routes) == 0 {
		return t, nil
	}

	rules := make([]Rule, 0, len(c.Routes))
	for _, r := range c.Routes {
		m, err := ParseMatch(r.Match)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.Pattern, err)
		}
		cl, err := ParseClassification(r.Classification)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.Pattern, err)
		}
		rules = append(rules, Rule{Pattern: r.Pattern, Match: m, Classification: cl})
	}

	t.Rules = rules
	return t, nil
}
