package employee

import "slices"

// Option is one entry of a select input.
type Option struct {
	Value string
	Label string
}

// Options is an ordered option table.
type Options []Option

// Values returns the accepted values in display order.
func (o Options) Values() []string {
	values := make([]string, len(o))
	for i, opt := range o {
		values[i] = opt.Value
	}
	return values
}

// Contains reports whether value is one of the options. Matching is case-sensitive.
func (o Options) Contains(value string) bool {
	return slices.ContainsFunc(o, func(opt Option) bool { return opt.Value == value })
}

// Label returns the label of value, or "" if it is not an option.
func (o Options) Label(value string) string {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label
		}
	}
	return ""
}

var (
	Genders = Options{
		{Value: "Male", Label: "Male"},
		{Value: "Female", Label: "Female"},
		{Value: "Other", Label: "Other"},
	}

	NAFlags = Options{
		{Value: "Y", Label: "Y"},
		{Value: "N", Label: "N"},
	}

	Directorates = Options{
		{Value: "DIT", Label: "DIT"},
		{Value: "DWST", Label: "DWST"},
		{Value: "DOVI", Label: "DOVI"},
	}

	Divisions = Options{
		{Value: "SDD", Label: "SDD"},
		{Value: "CND", Label: "CND"},
		{Value: "Network", Label: "Network"},
	}
)

// OptionsFor returns the option table of a select field.
func OptionsFor(field string) (Options, bool) {
	switch field {
	case FieldGender:
		return Genders, true
	case FieldNAFlag:
		return NAFlags, true
	case FieldDirectorate:
		return Directorates, true
	case FieldDivision:
		return Divisions, true
	default:
		return nil, false
	}
}
