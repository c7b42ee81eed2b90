package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Category is a named label for transactions.
//
// Transactions reference categories by name only, there is no foreign key.
type Category struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex;not null" example:"Groceries"`           // Name of the category
	Description string `json:"description" example:"Food and household supplies" default:""` // Description of the category
	NameKey     string `json:"-" gorm:"not null;default:'';index"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.NameKey = CategoryKey(c.Name)
	return nil
}

// CategoryKey returns the key categories are compared by. Two category
// names are equal if their keys are.
//
// The key is the name in lower case for all of Unicode, so it does not
// depend on the case folding of the database.
func CategoryKey(name string) string {
	// A Caser is stateful and must not be shared between goroutines
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}
