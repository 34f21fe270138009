package coords

import "strings"

// State is the parse state of possibly incomplete input.
type State int

const (
	StateEmpty State = iota
	StateIncomplete
	StateComplete
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateIncomplete:
		return "incomplete"
	case StateComplete:
		return "complete"
	default:
		return "invalid"
	}
}

// Status describes input as it is being typed.
type Status struct {
	State    State
	Form     Form
	Location Location // set when State is StateComplete
	Err      error    // set when State is StateInvalid
}

// Shape templates: 'H' is a hex digit, 'G' a booster glyph, anything else
// must match literally.
var formTemplates = []struct {
	form     Form
	template string
}{
	{FormPortal, "HHHHHHHHHHHH"},
	{FormGalactic, "HHHH:HHHH:HHHH:HHHH"},
	{FormGalactic, ":HHHH:HHHH:HHHH:HHHH"},
	{FormBooster, "GGGGG:HHHH:HHHH:HHHH"},
}

// Inspect classifies text that may still be being typed.
func Inspect(text string) Status {
	s := normalize(text)
	if s == "" {
		return Status{State: StateEmpty}
	}

	loc, form, err := parse(s)
	if err == nil {
		return Status{State: StateComplete, Form: form, Location: loc}
	}

	for _, t := range formTemplates {
		if len(s) < len(t.template) && matchesPrefix(s, t.template) {
			return Status{State: StateIncomplete, Form: t.form}
		}
	}
	return Status{State: StateInvalid, Form: form, Err: err}
}

func matchesPrefix(s, template string) bool {
	if len(s) > len(template) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch template[i] {
		case 'H':
			if !isHex(s[i]) {
				return false
			}
		case 'G':
			if !isGlyph(s[i]) {
				return false
			}
		default:
			if !strings.HasPrefix(s[i:], template[i:i+1]) {
				return false
			}
		}
	}
	return true
}
