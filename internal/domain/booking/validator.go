package booking

import (
	"time"

	"buchungssystem/internal/domain/user"
)

// Validate applies the booking rules to a proposal, in a fixed order: the
// first failing rule decides the rejection the user sees. It is a pure
// function of its four inputs and never consults the store; conflict checks
// against existing bookings live in the usecase layer.
//
// Admins are exempt from every rule except chronology, the lookahead cap
// and the daily window.
func Validate(p Proposal, role user.Role, now time.Time, rules Rules) error {
	// 1. chronology, everyone
	if !p.Start.Before(p.End) {
		return ErrInvalidRange
	}

	// 2. no past bookings, users only
	if role == user.RoleUser && p.Start.Before(now) {
		return ErrPastBooking
	}

	// 3. lookahead cap, everyone
	if p.Start.After(now.AddDate(0, 0, rules.MaxDaysAhead)) {
		return rejectf(CodeTooFarAhead, "Maximal %d Tage im Voraus buchbar", rules.MaxDaysAhead)
	}

	// 4. daily window, everyone. Compares only the time-of-day component of
	// each endpoint; a span across midnight can pass when both components
	// individually fit. That matches the original system and is kept as is.
	startMinutes := minutesOfDay(p.Start)
	endMinutes := minutesOfDay(p.End)
	if startMinutes < rules.MinTimeMinutes || endMinutes > rules.MaxTimeMinutes {
		return rejectf(CodeOutsideWindow, "Buchungen nur zwischen %s und %s erlaubt",
			rules.MinTimeOfDay(), rules.MaxTimeOfDay())
	}

	if role == user.RoleAdmin {
		return nil
	}

	// 5. lead-time buffer, resource-specific
	minStart := now.Add(time.Duration(rules.BufferMinutes(p.Resource)) * time.Minute)
	if p.Start.Before(minStart) {
		return rejectf(CodeBufferViolation, "Buchung frühestens ab %s Uhr erlaubt",
			minStart.Format("15:04"))
	}

	// 6. multi-day spans are admin-only
	if !sameDay(p.Start, p.End) {
		return ErrMultiDay
	}

	// 7. step alignment
	if startMinutes%rules.StepMinutes != 0 || endMinutes%rules.StepMinutes != 0 {
		return rejectf(CodeBadAlignment, "Zeiten müssen in %d-Minuten-Schritten liegen", rules.StepMinutes)
	}

	// 8. duration bounds, only for resources with a rule
	if rule, ok := rules.ResourceRule(p.Resource); ok {
		duration := p.DurationMinutes()
		if duration < rule.MinMinutes {
			return rejectf(CodeDurationOutOfRange, "Minimale Buchungsdauer: %d Minuten", rule.MinMinutes)
		}
		if duration > rule.MaxMinutes {
			return rejectf(CodeDurationOutOfRange, "Maximale Buchungsdauer: %d Minuten", rule.MaxMinutes)
		}
	}

	return nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
