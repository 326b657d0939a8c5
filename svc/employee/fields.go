package employee

import "slices"

// Form field names, as used in HTML inputs and the JSON payload.
const (
	FieldEmpID       = "empId"
	FieldEmpName     = "empName"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldAge         = "age"
	FieldGender      = "gender"
	FieldRoleName    = "roleName"
	FieldRoleNumber  = "roleNumber"
	FieldFromDate    = "fromDate"
	FieldToDate      = "toDate"
	FieldNAFlag      = "naFlag"
	FieldDirectorate = "directorate"
	FieldDivision    = "division"
	FieldEmail       = "email"
)

var fieldOrder = []string{
	FieldEmpID,
	FieldEmpName,
	FieldPhone,
	FieldAddress,
	FieldAge,
	FieldGender,
	FieldRoleName,
	FieldRoleNumber,
	FieldFromDate,
	FieldToDate,
	FieldNAFlag,
	FieldDirectorate,
	FieldDivision,
	FieldEmail,
}

var fieldLabels = map[string]string{
	FieldEmpID:       "Employee ID",
	FieldEmpName:     "Employee Name",
	FieldPhone:       "Phone",
	FieldAddress:     "Address",
	FieldAge:         "Age",
	FieldGender:      "Gender",
	FieldRoleName:    "Role Name",
	FieldRoleNumber:  "Role Number",
	FieldFromDate:    "From Date",
	FieldToDate:      "To Date",
	FieldNAFlag:      "NA Flag",
	FieldDirectorate: "Directorate",
	FieldDivision:    "Division",
	FieldEmail:       "Email",
}

// FieldNames returns the fourteen form fields in display order.
func FieldNames() []string {
	return slices.Clone(fieldOrder)
}

// Label returns the human readable name of field, or field itself when unknown.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
