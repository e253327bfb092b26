package model

// Entry is a single item on the grocery list. ID is assigned at creation and
// never changes; Value is the user-visible label and may repeat across entries.
type Entry struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
