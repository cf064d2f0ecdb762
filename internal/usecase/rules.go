package usecase

import "buchungssystem/internal/domain/booking"

// RuleSnapshot is the read-only metadata clients use for pre-validation and
// rendering: the closed enum sets and the numeric booking constants.
type RuleSnapshot struct {
	Rooms                  []EnumEntry
	Resources              []EnumEntry
	MinTime                string
	MaxTime                string
	StepMinutes            int
	DefaultDurationMinutes int
	MaxDaysAhead           int
	ResourceRules          map[string]booking.ResourceRule
}

type EnumEntry struct {
	Key   string
	Label string
}

type RuleQueries interface {
	Snapshot() RuleSnapshot
}

type ruleQueriesImpl struct {
	snapshot RuleSnapshot
}

// NewRuleQueries captures the rule table once; it never changes at runtime.
func NewRuleQueries(rules booking.Rules) RuleQueries {
	rooms := make([]EnumEntry, 0, len(booking.Rooms()))
	for _, r := range booking.Rooms() {
		rooms = append(rooms, EnumEntry{Key: r.Key(), Label: r.String()})
	}

	resources := make([]EnumEntry, 0, len(booking.Resources()))
	resourceRules := make(map[string]booking.ResourceRule)
	for _, r := range booking.Resources() {
		resources = append(resources, EnumEntry{Key: r.Key(), Label: r.String()})
		if rule, ok := rules.ResourceRule(r); ok {
			resourceRules[r.Key()] = rule
		}
	}

	return &ruleQueriesImpl{snapshot: RuleSnapshot{
		Rooms:                  rooms,
		Resources:              resources,
		MinTime:                rules.MinTimeOfDay(),
		MaxTime:                rules.MaxTimeOfDay(),
		StepMinutes:            rules.StepMinutes,
		DefaultDurationMinutes: rules.DefaultDurationMinutes,
		MaxDaysAhead:           rules.MaxDaysAhead,
		ResourceRules:          resourceRules,
	}}
}

func (q *ruleQueriesImpl) Snapshot() RuleSnapshot {
	return q.snapshot
}
