package coords

// Parse detects the form of text and decodes it.
func Parse(text string) (Location, error) {
	loc, _, err := parse(text)
	return loc, err
}

// ParseAs decodes text as the given form, without auto-detection.
func ParseAs(text string, form Form) (Location, error) {
	s := normalize(text)
	groups, err := splitForm(s, form)
	if err != nil {
		return Location{}, err
	}
	return decode(s, form, groups)
}

func parse(text string) (Location, Form, error) {
	s := normalize(text)
	form := closestForm(s)
	groups, err := splitForm(s, form)
	if err != nil {
		return Location{}, form, err
	}
	loc, err := decode(s, form, groups)
	return loc, form, err
}

func decode(s string, form Form, groups []string) (Location, error) {
	switch form {
	case FormPortal:
		return decodePortal(groups[0])
	case FormGalactic:
		return decodeGalactic(s, groups)
	case FormBooster:
		return decodeBooster(s, groups)
	}
	return Location{}, malformed(s, s, form, "unknown form")
}

// Render renders l in the given form.
func (l Location) Render(form Form) string {
	switch form {
	case FormGalactic:
		return l.Galactic()
	case FormBooster:
		return l.Booster()
	default:
		return l.Portal()
	}
}

// Result is the outcome of Convert.
type Result struct {
	Source   Form
	Location Location
	Codes    map[Form]string
	Derived  Derived
}

// Convert decodes text in whatever form it is written and renders each of
// the targets (all forms when none are given). It fails without producing
// any rendering if the input does not decode.
func Convert(text string, space Space, targets ...Form) (*Result, error) {
	loc, form, err := parse(text)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		targets = Forms
	}
	res := &Result{
		Source:   form,
		Location: loc,
		Codes:    make(map[Form]string, len(targets)),
		Derived:  loc.Derive(space),
	}
	for _, t := range targets {
		res.Codes[t] = loc.Render(t)
	}
	return res, nil
}
