package domain

// Category groups assets for reporting purposes.
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"` // unique
	Description string `json:"description"`

	AuditFields
}
