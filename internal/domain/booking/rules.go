package booking

import (
	"fmt"
	"time"
)

// ResourceRule bounds a single resource kind. Resources without a rule are
// unconstrained in duration and have no lead-time buffer.
type ResourceRule struct {
	MaxMinutes    int
	MinMinutes    int
	BufferMinutes int
}

// Rules is the static rule table plus the numeric booking constants. It is
// built once at process start and passed by value; the validator never reads
// ambient configuration.
type Rules struct {
	MaxDaysAhead           int
	MinTimeMinutes         int // daily window start, minutes since midnight
	MaxTimeMinutes         int // daily window end, minutes since midnight
	StepMinutes            int
	DefaultDurationMinutes int
	Location               *time.Location
	Resources              map[Resource]ResourceRule
}

// DefaultResourceRules is the house rule table from the original system.
func DefaultResourceRules() map[Resource]ResourceRule {
	return map[Resource]ResourceRule{
		ResourceSauna: {MaxMinutes: 120, MinMinutes: 30, BufferMinutes: 60},
		ResourceGrill: {MaxMinutes: 240, MinMinutes: 30, BufferMinutes: 60},
	}
}

// ResourceRule looks up the rule bundle for a resource.
func (r Rules) ResourceRule(res Resource) (ResourceRule, bool) {
	rule, ok := r.Resources[res]
	return rule, ok
}

// BufferMinutes returns the lead-time buffer for a resource, zero when the
// resource carries no rule.
func (r Rules) BufferMinutes(res Resource) int {
	if rule, ok := r.Resources[res]; ok {
		return rule.BufferMinutes
	}
	return 0
}

// MinTimeOfDay and MaxTimeOfDay render the window bounds as "HH:MM" for
// user-facing messages and the meta endpoint.
func (r Rules) MinTimeOfDay() string {
	return formatTimeOfDay(r.MinTimeMinutes)
}

func (r Rules) MaxTimeOfDay() string {
	return formatTimeOfDay(r.MaxTimeMinutes)
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
