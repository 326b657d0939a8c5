package employee

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/drdl/portal/pkg/validator"
)

// Field constraints.
const (
	NameMinLen         = 2
	NameMaxLen         = 50
	AddressMaxLen      = 100
	RoleNumberMaxLen   = 6
	MinAge             = 18
	MaxAge             = 80
	maxRepeatedLetters = 2
)

var (
	empIDPattern        = regexp.MustCompile(`^\d{6}$`)
	phonePattern        = regexp.MustCompile(`^[6-9]\d{9}$`)
	officialNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z ]{1,49}$`)
)

// Rejection messages shared by several fields.
const (
	MsgNameTooShort      = "At least 2 characters"
	MsgNameTooLong       = "Must be 50 characters or fewer"
	MsgNamePattern       = "Must start with a capital letter; only letters and spaces allowed"
	MsgNameRepeats       = "No more than two repeated letters in sequence"
	MsgNameAllCaps       = "Do not use ALL CAPS; use normal capitalization"
	MsgNameAllLowercase  = "Do not use all lowercase; use normal capitalization"
	MsgToDateBeforeStart = "To Date cannot be before From Date"
)

// FieldRule evaluates one field. ctx is the whole draft, for rules that
// depend on other fields. Implementations must not modify ctx.
type FieldRule func(value string, ctx Draft) validator.Outcome

// RuleSet maps field names to their rule.
type RuleSet map[string]FieldRule

// DefaultRules returns the rules of the employee form.
func DefaultRules() RuleSet {
	return RuleSet{
		FieldEmpID:       validateEmpID,
		FieldEmpName:     officialName(FieldEmpName),
		FieldPhone:       validatePhone,
		FieldAddress:     validateAddress,
		FieldAge:         validateAge,
		FieldGender:      requiredChoice(FieldGender, Genders),
		FieldRoleName:    officialName(FieldRoleName),
		FieldRoleNumber:  validateRoleNumber,
		FieldFromDate:    validateFromDate,
		FieldToDate:      validateToDate,
		FieldNAFlag:      requiredChoice(FieldNAFlag, NAFlags),
		FieldDirectorate: requiredChoice(FieldDirectorate, Directorates),
		FieldDivision:    requiredChoice(FieldDivision, Divisions),
		FieldEmail:       acceptAny,
	}
}

func validateEmpID(value string, _ Draft) validator.Outcome {
	return validator.First(
		validator.Required(FieldEmpID, value).WithMessage("Employee ID is required"),
		validator.Matches(FieldEmpID, value, empIDPattern, "6 digits").
			WithMessage("Employee ID must be exactly 6 digits, numbers only"),
	)
}

func validatePhone(value string, _ Draft) validator.Outcome {
	return validator.First(
		validator.Required(FieldPhone, value).WithMessage("Phone number is required"),
		validator.Matches(FieldPhone, value, phonePattern, "Indian mobile number").
			WithMessage("Phone must be a valid 10-digit Indian number (starts with 6/7/8/9)"),
	)
}

func validateAddress(value string, _ Draft) validator.Outcome {
	return validator.First(
		validator.MaxLen(FieldAddress, value, AddressMaxLen).WithMessage("Address must be 100 characters or fewer"),
	)
}

func validateAge(value string, _ Draft) validator.Outcome {
	if out := validator.First(
		validator.Required(FieldAge, value).WithMessage("Age is required"),
		validator.Digits(FieldAge, value).WithMessage("Age must be digits only"),
	); !out.IsAccepted() {
		return out
	}

	age, err := strconv.Atoi(value)
	if err != nil {
		// Only overflow gets here; anything that long is above the limit.
		age = math.MaxInt
	}

	return validator.First(
		validator.Min(FieldAge, age, MinAge).WithMessage("Minimum age is 18"),
		validator.Max(FieldAge, age, MaxAge).WithMessage("Maximum age is 80"),
	)
}

func validateRoleNumber(value string, _ Draft) validator.Outcome {
	return validator.First(
		validator.Required(FieldRoleNumber, value).WithMessage("Role Number is required"),
		validator.Digits(FieldRoleNumber, value).WithMessage("Role Number must contain digits only"),
		validator.MaxLen(FieldRoleNumber, value, RoleNumberMaxLen).WithMessage("Role Number must be at most 6 digits"),
	)
}

func validateFromDate(value string, _ Draft) validator.Outcome {
	return validator.First(
		validator.Required(FieldFromDate, value).WithMessage("From Date selection is required"),
	)
}

// An open-ended assignment has no To Date, and nothing can be compared
// until From Date is chosen.
func validateToDate(value string, ctx Draft) validator.Outcome {
	return validator.First(
		validator.DateNotBefore(FieldToDate, value, ctx.Get(FieldFromDate)).WithMessage(MsgToDateBeforeStart),
	)
}

// officialName checks names of people and roles: a capitalized run of
// letters and spaces in normal case without stuttered letters.
func officialName(field string) FieldRule {
	label := Label(field)
	return func(value string, _ Draft) validator.Outcome {
		return validator.First(
			validator.Required(field, value).WithMessage(label+" is required"),
			validator.MinLen(field, value, NameMinLen).WithMessage(MsgNameTooShort),
			validator.MaxLen(field, value, NameMaxLen).WithMessage(MsgNameTooLong),
			validator.Matches(field, value, officialNamePattern, "official name").WithMessage(MsgNamePattern),
			validator.NoRepeatedLetters(field, value, maxRepeatedLetters).WithMessage(MsgNameRepeats),
			validator.NotAllUpper(field, value).WithMessage(MsgNameAllCaps),
			validator.NotAllLower(field, value).WithMessage(MsgNameAllLowercase),
		)
	}
}

func requiredChoice(field string, options Options) FieldRule {
	label := Label(field)
	values := options.Values()
	return func(value string, _ Draft) validator.Outcome {
		return validator.First(
			validator.Required(field, value).WithMessage(label+" selection is required"),
			validator.OneOf(field, value, values).
				WithMessage(label+" must be one of: "+strings.Join(values, ", ")),
		)
	}
}

func acceptAny(string, Draft) validator.Outcome {
	return validator.Accepted()
}
