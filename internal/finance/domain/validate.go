package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

// ExpensePatch carries the raw payload of an expense create or update.
// Fields stay as raw JSON so that presence, JSON type and value remain
// distinguishable until the validators run.
type ExpensePatch struct {
	Date        json.RawMessage `json:"date"`
	CategoryID  json.RawMessage `json:"categoryId"`
	Amount      json.RawMessage `json:"amount"`
	Description json.RawMessage `json:"description"`
}

type CategoryPatch struct {
	Name json.RawMessage `json:"Category"`
}

// IsMissing reports whether a raw field is absent or falsy (null, false,
// 0, "", empty array or object). The create path treats falsy values the
// same as absent ones.
func IsMissing(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}

// RequireCreateFields enforces the create-path contract: date, category,
// amount and description must all be present and non-falsy, checked in
// that order, failing on the first gap before any coercion runs.
func (p *ExpensePatch) RequireCreateFields() error {
	if IsMissing(p.Date) {
		return financeErrors.NewMissingFieldError("date", "You must include a date")
	}
	if IsMissing(p.CategoryID) {
		return financeErrors.NewMissingFieldError("category", "You must include a category")
	}
	if IsMissing(p.Amount) {
		return financeErrors.NewMissingFieldError("amount", "You must include an amount")
	}
	if IsMissing(p.Description) {
		return financeErrors.NewMissingFieldError("description", "You must include a description")
	}
	return nil
}

// isNull matters because json.Unmarshal leaves the target untouched for
// a JSON null instead of reporting an error.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func ParseDate(raw json.RawMessage) (time.Time, error) {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return time.Time{}, financeErrors.NewFieldError("date", "Invalid date format. Use YYYY-MM-DD.")
	}
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, financeErrors.NewFieldError("date", "Invalid date format. Use YYYY-MM-DD.")
	}
	return date, nil
}

// ParseAmount accepts a JSON number or a numeric string and rejects
// everything else. No sign or bound is enforced; negative amounts are
// allowed.
func ParseAmount(raw json.RawMessage) (float64, error) {
	if isNull(raw) {
		return 0, financeErrors.NewFieldError("amount", "Invalid value for amount.")
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return n, nil
		}
	}
	return 0, financeErrors.NewFieldError("amount", "Invalid value for amount.")
}

func ParseDescription(raw json.RawMessage) (string, error) {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", financeErrors.NewFieldError("description", "Invalid value for description.")
	}
	return s, nil
}

// ParseCategoryID rejects anything but an integral JSON number. Whether
// the id resolves to a category owned by the acting user is a separate,
// store-backed check.
func ParseCategoryID(raw json.RawMessage) (int64, error) {
	var id int64
	if isNull(raw) || json.Unmarshal(raw, &id) != nil {
		return 0, financeErrors.NewFieldError("categoryId", "Invalid value for categoryId.")
	}
	return id, nil
}

func ParseCategoryName(raw json.RawMessage) (string, error) {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", financeErrors.NewFieldError("Category", "Invalid value for Category.")
	}
	return s, nil
}
