package response

import "buchungssystem/internal/usecase"

// RulesResponse mirrors the discovery payload of the original backend:
// enum sets plus the numeric booking rule constants.
type RulesResponse struct {
	Rooms        []EnumEntryResponse `json:"rooms"`
	Resources    []EnumEntryResponse `json:"resources"`
	BookingRules BookingRules        `json:"booking_rules"`
}

type EnumEntryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type BookingRules struct {
	MinTime                string                  `json:"min_time"`
	MaxTime                string                  `json:"max_time"`
	StepMinutes            int                     `json:"step_minutes"`
	DefaultDurationMinutes int                     `json:"default_duration_minutes"`
	MaxDaysAhead           int                     `json:"max_days_ahead"`
	ResourceRules          map[string]ResourceRule `json:"resource_rules"`
}

type ResourceRule struct {
	MaxMinutes    int `json:"max_minutes"`
	MinMinutes    int `json:"min_minutes"`
	BufferMinutes int `json:"buffer_minutes"`
}

func FromRuleSnapshot(s usecase.RuleSnapshot) RulesResponse {
	rooms := make([]EnumEntryResponse, len(s.Rooms))
	for i, r := range s.Rooms {
		rooms[i] = EnumEntryResponse{Key: r.Key, Label: r.Label}
	}

	resources := make([]EnumEntryResponse, len(s.Resources))
	for i, r := range s.Resources {
		resources[i] = EnumEntryResponse{Key: r.Key, Label: r.Label}
	}

	resourceRules := make(map[string]ResourceRule, len(s.ResourceRules))
	for key, rule := range s.ResourceRules {
		resourceRules[key] = ResourceRule{
			MaxMinutes:    rule.MaxMinutes,
			MinMinutes:    rule.MinMinutes,
			BufferMinutes: rule.BufferMinutes,
		}
	}

	return RulesResponse{
		Rooms:     rooms,
		Resources: resources,
		BookingRules: BookingRules{
			MinTime:                s.MinTime,
			MaxTime:                s.MaxTime,
			StepMinutes:            s.StepMinutes,
			DefaultDurationMinutes: s.DefaultDurationMinutes,
			MaxDaysAhead:           s.MaxDaysAhead,
			ResourceRules:          resourceRules,
		},
	}
}
