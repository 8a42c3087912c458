package booking

// State is the booking form's submission lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// blocksSubmit reports whether a new submission must be refused.
func (s State) blocksSubmit() bool {
	return s == StateLoading || s == StateSuccess
}

const (
	successMessage = "Appointment booked! We'll contact you shortly."
	errorMessage   = "Something went wrong. Please try again or call us."
)

// Message is the user-facing status line for the state, empty when none is shown.
func (s State) Message() string {
	switch s {
	case StateSuccess:
		return successMessage
	case StateError:
		return errorMessage
	default:
		return ""
	}
}
