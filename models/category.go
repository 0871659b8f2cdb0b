package models

import "time"

// Category groups credentials under a user-defined label with presentation
// metadata (icon tag and color). Category names are unique per owner.
type Category struct {
	// CategoryID is the unique identifier of the category (UUID).
	CategoryID string `json:"category_id"`

	// UserID is the owner of the category.
	UserID string `json:"user_id"`

	// Name is the display name, unique within the owner's vault.
	Name string `json:"name"`

	// Icon is an icon tag from the closed set in [CategoryIcons].
	Icon string `json:"icon"`

	// Color is a hex RGB string, e.g. "#22c55e".
	Color string `json:"color"`

	// CreatedAt is the timestamp when the category was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryInput carries the client-supplied fields for creating or updating
// a category. The owner is never part of the input.
type CategoryInput struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryIcons is the closed set of icon tags a category may carry.
// Unknown tags are rejected at the service layer.
var CategoryIcons = map[string]struct{}{
	"building-columns": {},
	"file-lines":       {},
	"share-nodes":      {},
	"envelope":         {},
	"id-card":          {},
	"key":              {},
	"credit-card":      {},
	"globe":            {},
	"lock":             {},
	"folder":           {},
}

// IsValidCategoryIcon reports whether icon belongs to [CategoryIcons].
func IsValidCategoryIcon(icon string) bool {
	_, ok := CategoryIcons[icon]
	return ok
}

// DefaultCategories returns the five starter categories created for every
// new account, owned by userID. IDs and timestamps are left for the caller
// to assign.
func DefaultCategories(userID string) []Category {
	return []Category{
		{UserID: userID, Name: "Bank Accounts", Icon: "building-columns", Color: "#22c55e"},
		{UserID: userID, Name: "Extra Documents", Icon: "file-lines", Color: "#3b82f6"},
		{UserID: userID, Name: "Social Media", Icon: "share-nodes", Color: "#8b5cf6"},
		{UserID: userID, Name: "Email Accounts", Icon: "envelope", Color: "#ef4444"},
		{UserID: userID, Name: "Government IDs", Icon: "id-card", Color: "#f59e0b"},
	}
}
