// Package validation converts untrusted request bodies into validated typed
// values. Validators report every violated field, not just the first, as a
// mapping from field name to an ordered list of human-readable messages.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field messages. These are part of the API contract and asserted by tests.
const (
	MsgRequired       = "Missing data for required field."
	MsgNotString      = "Not a valid string."
	MsgNotNumber      = "Not a valid number."
	MsgTitleLength    = "Length must be between 1 and 50."
	MsgUsernameLength = "Length must be between 4 and 20."
	MsgPasswordShort  = "Shorter than minimum length 4."
	MsgAmountNegative = "Must be greater than or equal to 0."
	MsgUsernameTaken  = "Username already exists"
)

// Errors maps a field name to the ordered list of messages explaining why
// the field was rejected. It implements error so services can return it
// directly and let the API boundary render it as a 400 response.
type Errors map[string][]string

// Add appends a message to the given field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ExpenseInput holds validated expense fields. Nil pointers mean the field
// was not supplied, which is only legal for partial updates.
type ExpenseInput struct {
	Title  *string
	Amount *float64
}

// Credentials holds a validated username/password pair.
type Credentials struct {
	Username string
	Password string
}

// ExpenseCreate validates the body of an expense creation request.
// Both title and amount are required.
func ExpenseCreate(raw map[string]any) (ExpenseInput, Errors) {
	return validateExpense(raw, false)
}

// ExpenseUpdate validates the body of a partial expense update.
// Both fields are optional; only supplied fields are validated.
func ExpenseUpdate(raw map[string]any) (ExpenseInput, Errors) {
	return validateExpense(raw, true)
}

func validateExpense(raw map[string]any, partial bool) (ExpenseInput, Errors) {
	var in ExpenseInput
	errs := Errors{}

	if v, ok := raw["title"]; ok {
		in.Title = validateTitle(v, errs)
	} else if !partial {
		errs.Add("title", MsgRequired)
	}

	if v, ok := raw["amount"]; ok {
		in.Amount = validateAmount(v, errs)
	} else if !partial {
		errs.Add("amount", MsgRequired)
	}

	return in, errs
}

func validateTitle(v any, errs Errors) *string {
	s, ok := v.(string)
	if !ok {
		errs.Add("title", MsgNotString)
		return nil
	}
	if n := utf8.RuneCountInString(s); n < 1 || n > 50 {
		errs.Add("title", MsgTitleLength)
		return nil
	}
	return &s
}

func validateAmount(v any, errs Errors) *float64 {
	// encoding/json decodes every JSON number into float64.
	f, ok := v.(float64)
	if !ok {
		errs.Add("amount", MsgNotNumber)
		return nil
	}
	if f < 0 {
		errs.Add("amount", MsgAmountNegative)
		return nil
	}
	return &f
}

// UserCredentials validates a registration or login body: username required,
// 4-20 characters; password required, at least 4 characters. The username
// uniqueness check is a separate store-dependent step run only by
// registration, so the same structural validator serves both endpoints.
func UserCredentials(raw map[string]any) (Credentials, Errors) {
	var creds Credentials
	errs := Errors{}

	if v, ok := raw["username"]; ok {
		if s, ok := v.(string); !ok {
			errs.Add("username", MsgNotString)
		} else if n := utf8.RuneCountInString(s); n < 4 || n > 20 {
			errs.Add("username", MsgUsernameLength)
		} else {
			creds.Username = s
		}
	} else {
		errs.Add("username", MsgRequired)
	}

	if v, ok := raw["password"]; ok {
		if s, ok := v.(string); !ok {
			errs.Add("password", MsgNotString)
		} else if utf8.RuneCountInString(s) < 4 {
			errs.Add("password", MsgPasswordShort)
		} else {
			creds.Password = s
		}
	} else {
		errs.Add("password", MsgRequired)
	}

	return creds, errs
}
