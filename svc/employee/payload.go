package employee

import (
	"fmt"
	"strconv"
)

// Payload is the JSON body of a create request.
// The validate tags restate the form rules for the API client's
// last check before sending.
type Payload struct {
	EmpID       string  `json:"empId" validate:"required,len=6,number"`
	EmpName     string  `json:"empName" validate:"required,min=2,max=50"`
	Phone       string  `json:"phone" validate:"required,len=10,number"`
	Address     string  `json:"address" validate:"max=100"`
	Age         int     `json:"age" validate:"gte=18,lte=80"`
	Gender      string  `json:"gender" validate:"oneof=Male Female Other"`
	RoleName    string  `json:"roleName" validate:"required,min=2,max=50"`
	RoleNumber  string  `json:"roleNumber" validate:"required,max=6,number"`
	FromDate    string  `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate      string  `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
	NAFlag      string  `json:"naFlag" validate:"oneof=Y N"`
	Directorate string  `json:"directorate" validate:"oneof=DIT DWST DOVI"`
	Division    string  `json:"division" validate:"oneof=SDD CND Network"`
	Email       *string `json:"email"`
}

// NewPayload converts d without validating it. Age is parsed as a base-10
// integer and an empty email is sent as null.
func NewPayload(d Draft) (Payload, error) {
	age, err := strconv.Atoi(d.Get(FieldAge))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: age: %w", ErrNotSubmittable, err)
	}

	var email *string
	if v := d.Get(FieldEmail); v != "" {
		email = &v
	}

	return Payload{
		EmpID:       d.Get(FieldEmpID),
		EmpName:     d.Get(FieldEmpName),
		Phone:       d.Get(FieldPhone),
		Address:     d.Get(FieldAddress),
		Age:         age,
		Gender:      d.Get(FieldGender),
		RoleName:    d.Get(FieldRoleName),
		RoleNumber:  d.Get(FieldRoleNumber),
		FromDate:    d.Get(FieldFromDate),
		ToDate:      d.Get(FieldToDate),
		NAFlag:      d.Get(FieldNAFlag),
		Directorate: d.Get(FieldDirectorate),
		Division:    d.Get(FieldDivision),
		Email:       email,
	}, nil
}

// Employee is a record returned by the search endpoint.
type Employee struct {
	EmpID       string  `json:"empId"`
	EmpName     string  `json:"empName"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	RoleName    string  `json:"roleName"`
	RoleNumber  string  `json:"roleNumber"`
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	NAFlag      string  `json:"naFlag"`
	Directorate string  `json:"directorate"`
	Division    string  `json:"division"`
	Email       *string `json:"email,omitempty"`
}

// Current reports whether the assignment has no end date.
func (e Employee) Current() bool {
	return e.ToDate == ""
}
