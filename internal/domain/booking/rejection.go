package booking

import "fmt"

// Code identifies why a proposal was turned down. Codes are stable; the
// message is the German text shown to the user.
type Code string

const (
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeInvalidRange       Code = "INVALID_RANGE"
	CodePastBooking        Code = "PAST_BOOKING"
	CodeTooFarAhead        Code = "TOO_FAR_AHEAD"
	CodeOutsideWindow      Code = "OUTSIDE_WINDOW"
	CodeBufferViolation    Code = "BUFFER_VIOLATION"
	CodeMultiDayForbidden  Code = "MULTI_DAY_FORBIDDEN"
	CodeBadAlignment       Code = "BAD_ALIGNMENT"
	CodeDurationOutOfRange Code = "DURATION_OUT_OF_RANGE"
	CodeDuplicateDay       Code = "DUPLICATE_DAY"
	CodeSlotTaken          Code = "SLOT_TAKEN"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
)

// Class groups codes into transport-level outcome classes.
type Class int

const (
	ClassValidation Class = iota // client error, proposal must change
	ClassConflict                // slot contention, retryable with another slot
	ClassForbidden               // role mismatch
	ClassNotFound
)

// Rejection is a structured refusal. Two rejections compare equal under
// errors.Is when their codes match, regardless of message details.
type Rejection struct {
	Code    Code
	Message string
}

func (r *Rejection) Error() string {
	return string(r.Code) + ": " + r.Message
}

func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Code == r.Code
}

func (r *Rejection) Class() Class {
	switch r.Code {
	case CodeDuplicateDay, CodeSlotTaken:
		return ClassConflict
	case CodeForbidden:
		return ClassForbidden
	case CodeNotFound:
		return ClassNotFound
	default:
		return ClassValidation
	}
}

func rejectf(code Code, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for the rejections whose message never varies. Dynamic messages
// are built with rejectf and still match these via Is.
var (
	ErrInvalidInput       = &Rejection{Code: CodeInvalidInput, Message: "Ungültige Eingabedaten"}
	ErrInvalidRange       = &Rejection{Code: CodeInvalidRange, Message: "Endzeit muss nach Startzeit liegen"}
	ErrPastBooking        = &Rejection{Code: CodePastBooking, Message: "Buchungen in der Vergangenheit sind nicht erlaubt"}
	ErrTooFarAhead        = &Rejection{Code: CodeTooFarAhead, Message: "Zu weit im Voraus"}
	ErrOutsideWindow      = &Rejection{Code: CodeOutsideWindow, Message: "Außerhalb des Buchungsfensters"}
	ErrBufferViolation    = &Rejection{Code: CodeBufferViolation, Message: "Vorlaufzeit nicht eingehalten"}
	ErrMultiDay           = &Rejection{Code: CodeMultiDayForbidden, Message: "Mehrtägige Buchungen sind nur für Admins erlaubt"}
	ErrBadAlignment       = &Rejection{Code: CodeBadAlignment, Message: "Zeiten nicht am Raster ausgerichtet"}
	ErrDurationOutOfRange = &Rejection{Code: CodeDurationOutOfRange, Message: "Buchungsdauer außerhalb der Grenzen"}
	ErrDuplicateDay       = &Rejection{Code: CodeDuplicateDay, Message: "Pro Tag ist nur eine Buchung erlaubt"}
	ErrSlotTaken          = &Rejection{Code: CodeSlotTaken, Message: "Zeitraum bereits belegt"}
	ErrForbidden          = &Rejection{Code: CodeForbidden, Message: "Keine Berechtigung"}
	ErrNotFound           = &Rejection{Code: CodeNotFound, Message: "Buchung nicht gefunden"}
)
