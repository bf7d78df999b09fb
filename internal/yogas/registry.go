// Package yogas evaluates classical yoga combinations against a computed
// chart context. Every yoga is an independent named rule; the detector runs
// them uniformly and reports every match, with no merging or precedence
// between overlapping yogas.
package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/pkg/logger"
)

// Rule is one named yoga predicate.
type Rule struct {
	Name         string
	Significance string
	Detect       func(ctx *contracts.ChartContext) (contracts.Yoga, bool)
}

// Detector holds the rule registry.
type Detector struct {
	rules  []Rule
	logger *logger.Logger
}

// NewDetector creates a detector with the full classical registry.
func NewDetector(log *logger.Logger) *Detector {
	if log == nil {
		log = logger.Nop()
	}
	d := &Detector{logger: log}
	d.rules = append(d.rules, lunarRules()...)
	d.rules = append(d.rules, solarRules()...)
	d.rules = append(d.rules, mahapurushaRules()...)
	d.rules = append(d.rules, rajaRules()...)
	d.rules = append(d.rules, viparitaRules()...)
	d.rules = append(d.rules, nabhasaRules()...)
	d.rules = append(d.rules, miscRules()...)
	return d
}

// Rules exposes the registry, for per-yoga tests.
func (d *Detector) Rules() []Rule {
	return d.rules
}

// Rule returns the registered rule with the given name, if any.
func (d *Detector) Rule(name string) (Rule, bool) {
	for _, r := range d.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Detect evaluates every rule and returns the matches.
func (d *Detector) Detect(ctx *contracts.ChartContext) []contracts.Yoga {
	var found []contracts.Yoga
	for _, rule := range d.rules {
		if y, ok := rule.Detect(ctx); ok {
			y.Name = rule.Name
			y.Significance = rule.Significance
			found = append(found, y)
		}
	}
	d.logger.WithFields(map[string]interface{}{
		"evaluated": len(d.rules),
		"detected":  len(found),
	}).Debug("yoga detection complete")
	return found
}
