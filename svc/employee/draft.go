package employee

import "maps"

// Draft is an unvalidated record: field name to raw input.
// Absent keys read as "".
type Draft map[string]string

// Get returns the raw value of field. Safe on a nil Draft.
func (d Draft) Get(field string) string {
	return d[field]
}

// With returns a copy of d with field set to value.
func (d Draft) With(field, value string) Draft {
	next := make(Draft, len(d)+1)
	maps.Copy(next, d)
	next[field] = value
	return next
}

// Form is the request shape of the employee form.
type Form struct {
	EmpID       string `form:"empId"`
	EmpName     string `form:"empName"`
	Phone       string `form:"phone"`
	Address     string `form:"address"`
	Age         string `form:"age"`
	Gender      string `form:"gender"`
	RoleName    string `form:"roleName"`
	RoleNumber  string `form:"roleNumber"`
	FromDate    string `form:"fromDate"`
	ToDate      string `form:"toDate"`
	NAFlag      string `form:"naFlag"`
	Directorate string `form:"directorate"`
	Division    string `form:"division"`
	Email       string `form:"email"`
}

// Draft converts the bound form into a Draft holding all fourteen fields.
func (f Form) Draft() Draft {
	return Draft{
		FieldEmpID:       f.EmpID,
		FieldEmpName:     f.EmpName,
		FieldPhone:       f.Phone,
		FieldAddress:     f.Address,
		FieldAge:         f.Age,
		FieldGender:      f.Gender,
		FieldRoleName:    f.RoleName,
		FieldRoleNumber:  f.RoleNumber,
		FieldFromDate:    f.FromDate,
		FieldToDate:      f.ToDate,
		FieldNAFlag:      f.NAFlag,
		FieldDirectorate: f.Directorate,
		FieldDivision:    f.Division,
		FieldEmail:       f.Email,
	}
}
