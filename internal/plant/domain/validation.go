package domain

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FieldName       = "name"
	FieldPrice      = "price"
	FieldCategories = "categories"
	FieldInStock    = "inStock"
)

const (
	MsgNameRequired       = "Plant name is required"
	MsgNameTooLong        = "Plant name cannot exceed 100 characters"
	MsgPriceNotNumber     = "Price must be a number"
	MsgPriceNegative      = "Price cannot be negative"
	MsgCategoriesRequired = "At least one category is required"
	MsgInStockNotBool     = "inStock must be a boolean value"
)

// FieldError is one {field, message} pair of a failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rule a create request broke.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField returns the first message per field.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var fieldOrder = map[string]int{
	FieldName:       0,
	FieldPrice:      1,
	FieldCategories: 2,
	FieldInStock:    3,
}

func newValidationError(problems []FieldError) *ValidationError {
	sort.SliceStable(problems, func(i, j int) bool {
		return fieldOrder[problems[i].Field] < fieldOrder[problems[j].Field]
	})
	return &ValidationError{Errors: problems}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDraft runs the struct rules. Price rules are skipped when the price
// already failed to parse.
func validateDraft(d PlantDraft, skipPrice bool) []FieldError {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	var out []FieldError
	for _, fe := range verrs {
		if skipPrice && fe.Field() == FieldPrice {
			continue
		}
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldName:
		if fe.Tag() == "max" {
			return MsgNameTooLong
		}
		return MsgNameRequired
	case FieldPrice:
		return MsgPriceNegative
	case FieldCategories:
		return MsgCategoriesRequired
	}
	return fe.Error()
}
