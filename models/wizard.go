package models

// Wizard steps. The flow is strictly linear: service -> datetime ->
// details -> confirmation, with restart as the only way back.
const (
	StepService      = "service"
	StepDateTime     = "datetime"
	StepDetails      = "details"
	StepConfirmation = "confirmation"
)

// CustomerDetails holds the contact fields collected at the details step.
// Name, Email, Phone and Address are required; Notes is optional.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// WizardSession holds the state collected across the booking wizard
// between steps.
type WizardSession struct {
	SessionID string           `json:"sessionId"`
	Step      string           `json:"step"`
	Service   *Service         `json:"service,omitempty"`
	Date      string           `json:"date,omitempty"`
	Time      string           `json:"time,omitempty"`
	Details   *CustomerDetails `json:"details,omitempty"`

	// Populated once the details step has been submitted. Acknowledged
	// distinguishes a confirmed store write from one that was attempted
	// but never confirmed; the wizard reaches confirmation either way.
	Booking      *Booking `json:"booking,omitempty"`
	Acknowledged bool     `json:"acknowledged"`
}
