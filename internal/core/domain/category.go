package domain

import (
	"fmt"
	"strings"
)

// ExpenseCategory classifies a transaction for limit tracking purposes.
type ExpenseCategory string

const (
	CategoryProduct ExpenseCategory = "PRODUCT"
	CategoryService ExpenseCategory = "SERVICE"
)

// ParseExpenseCategory converts a raw string into an ExpenseCategory.
func ParseExpenseCategory(raw string) (ExpenseCategory, error) {
	switch ExpenseCategory(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategoryProduct:
		return CategoryProduct, nil
	case CategoryService:
		return CategoryService, nil
	default:
		return "", fmt.Errorf("unknown expense category %q", raw)
	}
}

// IsValid reports whether the category is one of the known values.
func (c ExpenseCategory) IsValid() bool {
	return c == CategoryProduct || c == CategoryService
}
