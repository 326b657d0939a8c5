package views

import (
	employee "github.com/drdl/portal/modules/employee"
	emp "github.com/drdl/portal/svc/employee"
)

type input int

const (
	textInput input = iota
	dateInput
	selectInput
)

type fieldDef struct {
	name      string
	kind      input
	maxLength int
}

var sections = []struct {
	title  string
	fields []fieldDef
}{
	{
		title: "Personal Details",
		fields: []fieldDef{
			{name: emp.FieldEmpID, maxLength: 6},
			{name: emp.FieldEmpName},
			{name: emp.FieldPhone, maxLength: 10},
			{name: emp.FieldAddress},
			{name: emp.FieldAge},
			{name: emp.FieldGender, kind: selectInput},
		},
	},
	{
		title: "Role Details",
		fields: []fieldDef{
			{name: emp.FieldRoleName},
			{name: emp.FieldRoleNumber, maxLength: 6},
			{name: emp.FieldFromDate, kind: dateInput},
			{name: emp.FieldToDate, kind: dateInput},
			{name: emp.FieldNAFlag, kind: selectInput},
			{name: emp.FieldDirectorate, kind: selectInput},
			{name: emp.FieldDivision, kind: selectInput},
			{name: emp.FieldEmail},
		},
	},
}

type formPageView struct {
	Form    formView
	Preview *employee.PreviewParams
}

type formView struct {
	Action   string
	Sections []sectionView
}

type sectionView struct {
	Title  string
	Fields []fieldView
}

type fieldView struct {
	Name        string
	Label       string
	Type        string
	Select      bool
	Value       string
	Placeholder string
	MaxLength   int
	Options     []optionView
	ValidateURL string
	Error       string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

func newFormView(p employee.FormParams) formView {
	form := formView{Action: p.Action}

	for _, section := range sections {
		sv := sectionView{Title: section.title}
		for _, def := range section.fields {
			sv.Fields = append(sv.Fields, newFieldView(def, p))
		}
		form.Sections = append(form.Sections, sv)
	}

	return form
}

func newFieldView(def fieldDef, p employee.FormParams) fieldView {
	value := p.Values.Get(def.name)
	f := fieldView{
		Name:        def.name,
		Label:       emp.Label(def.name),
		Value:       value,
		MaxLength:   def.maxLength,
		ValidateURL: p.ValidateAction + def.name,
		Error:       p.Errors.First(def.name),
	}
	if def.name == emp.FieldEmail {
		f.Label = "Email (optional)"
	}

	switch def.kind {
	case dateInput:
		f.Type = "date"
	case selectInput:
		f.Select = true
		options, _ := emp.OptionsFor(def.name)
		for _, opt := range options {
			f.Options = append(f.Options, optionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == value,
			})
		}
	default:
		f.Type = "text"
		f.Placeholder = emp.Label(def.name)
	}

	return f
}
