// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// RowViewModel holds presentation-ready data for one list row.
type RowViewModel struct {
	ID         string
	Value      string
	EditPath   string // POST target for the edit button
	DeletePath string // POST target for the delete button
}

// NoticeViewModel holds the alert banner contents. Empty Message hides it.
type NoticeViewModel struct {
	Message string
	Class   string // computed: alert-success or alert-danger
}

// FormViewModel holds the item form state.
type FormViewModel struct {
	Value       string // prefilled while editing
	SubmitLabel string // "edit" while editing, "submit" otherwise
	Editing     bool
	CSRFToken   string
}

// PageViewModel holds all data needed to render the list page.
type PageViewModel struct {
	Title            string
	Notice           NoticeViewModel
	Form             FormViewModel
	Rows             []RowViewModel
	ContainerVisible bool
}
