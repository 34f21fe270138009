package coords

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Form identifies one of the textual encodings of a Location.
type Form int

const (
	FormPortal Form = iota
	FormGalactic
	FormBooster
)

// Forms lists every form in rendering order.
var Forms = []Form{FormPortal, FormGalactic, FormBooster}

func (f Form) String() string {
	switch f {
	case FormPortal:
		return "portal address"
	case FormGalactic:
		return "galactic coordinates"
	case FormBooster:
		return "signal booster code"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

const (
	separator     = ":"
	portalLength  = 12
	groupLength   = 4
	glyphsLength  = 5
	groupsPerCode = 4
)

// normalize trims whitespace and folds full-width characters (as pasted from
// some chat clients) to their ASCII forms.
func normalize(text string) string {
	return strings.TrimSpace(width.Fold.String(text))
}

// closestForm guesses the form from the overall shape alone.
func closestForm(s string) Form {
	if !strings.Contains(s, separator) {
		return FormPortal
	}
	if first, _, _ := strings.Cut(s, separator); utf8.RuneCountInString(first) == glyphsLength {
		return FormBooster
	}
	return FormGalactic
}

// Detect reports which form text is written in. The input must match that
// form's lexical shape completely; field ranges are not checked.
func Detect(text string) (Form, error) {
	s := normalize(text)
	form := closestForm(s)
	if _, err := splitForm(s, form); err != nil {
		return form, err
	}
	return form, nil
}

// splitForm checks s against the lexical shape of form and returns its
// tokens: one token for a portal address, four groups otherwise.
func splitForm(s string, form Form) ([]string, error) {
	switch form {
	case FormPortal:
		if n := utf8.RuneCountInString(s); n != portalLength {
			return nil, malformed(s, s, form, fmt.Sprintf("expected %d hex digits, got %d characters", portalLength, n))
		}
		for _, r := range s {
			if r >= utf8.RuneSelf || !isHex(byte(r)) {
				return nil, malformed(s, string(r), form, "is not a hex digit")
			}
		}
		return []string{s}, nil

	case FormGalactic:
		groups, err := splitGroups(s, strings.TrimPrefix(s, separator), form)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			if err := checkHexGroup(s, g, form); err != nil {
				return nil, err
			}
		}
		return groups, nil

	case FormBooster:
		groups, err := splitGroups(s, s, form)
		if err != nil {
			return nil, err
		}
		prefix := groups[0]
		if utf8.RuneCountInString(prefix) != glyphsLength {
			return nil, malformed(s, prefix, form, fmt.Sprintf("expected %d booster glyphs", glyphsLength))
		}
		for _, r := range prefix {
			if r >= utf8.RuneSelf || !isGlyph(byte(r)) {
				return nil, malformed(s, string(r), form, "is not a booster glyph")
			}
		}
		for _, g := range groups[1:] {
			if err := checkHexGroup(s, g, form); err != nil {
				return nil, err
			}
		}
		return groups, nil
	}
	return nil, malformed(s, s, form, "unknown form")
}

func splitGroups(input, body string, form Form) ([]string, error) {
	groups := strings.Split(body, separator)
	if len(groups) != groupsPerCode {
		return nil, malformed(input, input, form, fmt.Sprintf("expected %d %q-separated groups, got %d", groupsPerCode, separator, len(groups)))
	}
	return groups, nil
}

func checkHexGroup(input, group string, form Form) error {
	if len(group) != groupLength || !isHexString(group) {
		return malformed(input, group, form, fmt.Sprintf("is not a %d-digit hex group", groupLength))
	}
	return nil
}
