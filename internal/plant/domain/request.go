package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPattern is the plain decimal form accepted for string prices: an
// optional sign, digits, and at most one decimal point followed by digits.
var numericPattern = regexp.MustCompile(`^[+-]?([0-9]*\.)?[0-9]+$`)

// CreatePlantRequest is the wire shape accepted by the create endpoint. Its
// fields tolerate the loose inputs browsers and scripts send; Normalize turns
// it into a canonical PlantDraft.
type CreatePlantRequest struct {
	Name       string       `json:"name"`
	Price      PriceInput   `json:"price"`
	Categories CategoryList `json:"categories"`
	InStock    StockFlag    `json:"inStock"`
}

// UnmarshalJSON decodes name leniently: a JSON number keeps its literal text
// and any other non-string value counts as absent, so the problem surfaces as
// a field error from Normalize.
func (r *CreatePlantRequest) UnmarshalJSON(b []byte) error {
	var wire struct {
		Name       json.RawMessage `json:"name"`
		Price      PriceInput      `json:"price"`
		Categories CategoryList    `json:"categories"`
		InStock    StockFlag       `json:"inStock"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*r = CreatePlantRequest{
		Name:       looseString(wire.Name),
		Price:      wire.Price,
		Categories: wire.Categories,
		InStock:    wire.InStock,
	}
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// PriceInput holds a price given as a JSON number or a numeric string.
type PriceInput struct {
	value   float64
	present bool
	valid   bool
}

func PriceFromFloat(v float64) PriceInput {
	return PriceInput{value: v, present: true, valid: isFinite(v)}
}

// PriceFromString parses form input; blank input counts as absent.
func PriceFromString(s string) PriceInput {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceInput{}
	}
	if !numericPattern.MatchString(s) {
		return PriceInput{present: true}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return PriceInput{present: true}
	}
	return PriceInput{value: v, present: true, valid: true}
}

func (p *PriceInput) UnmarshalJSON(b []byte) error {
	*p = PriceInput{}
	if isNull(b) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*p = PriceFromFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PriceFromString(s)
		p.present = true
		return nil
	}
	p.present = true
	return nil
}

func (p PriceInput) Value() (float64, bool) {
	return p.value, p.present && p.valid
}

// CategoryList accepts either a JSON array of strings or one comma-separated
// string. Both forms normalize to the same trimmed, non-empty sequence.
type CategoryList struct {
	values []string
	valid  bool
}

func CategoriesFromString(s string) CategoryList {
	return CategoryList{values: SplitCategories(s), valid: true}
}

func CategoriesFromSlice(list []string) CategoryList {
	return CategoryList{values: NormalizeCategories(list), valid: true}
}

func (c *CategoryList) UnmarshalJSON(b []byte) error {
	*c = CategoryList{}
	if isNull(b) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = CategoriesFromString(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*c = CategoriesFromSlice(list)
		return nil
	}
	return nil
}

func (c CategoryList) Values() []string {
	if !c.valid {
		return nil
	}
	return c.values
}

// SplitCategories splits "Indoor, Tropical" into ["Indoor", "Tropical"].
func SplitCategories(s string) []string {
	return NormalizeCategories(strings.Split(s, ","))
}

// NormalizeCategories trims every entry and drops the empty ones.
func NormalizeCategories(list []string) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// StockFlag holds the optional inStock value. Absent means true.
type StockFlag struct {
	value   bool
	present bool
	valid   bool
}

func StockFlagOf(v bool) StockFlag {
	return StockFlag{value: v, present: true, valid: true}
}

func (f *StockFlag) UnmarshalJSON(b []byte) error {
	*f = StockFlag{}
	if isNull(b) {
		return nil
	}
	f.present = true
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		f.value, f.valid = v, true
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		raw = string(bytes.TrimSpace(b))
	}
	switch strings.TrimSpace(raw) {
	case "true", "1":
		f.value, f.valid = true, true
	case "false", "0":
		f.value, f.valid = false, true
	}
	return nil
}

func (f StockFlag) Value() bool {
	if !f.present || !f.valid {
		return true
	}
	return f.value
}

// Normalize trims, coerces and validates the request. The returned error is
// always a *ValidationError.
func (r CreatePlantRequest) Normalize() (PlantDraft, error) {
	draft := PlantDraft{
		Name:       strings.TrimSpace(r.Name),
		Categories: r.Categories.Values(),
		InStock:    r.InStock.Value(),
	}
	if draft.Categories == nil {
		draft.Categories = []string{}
	}

	var problems []FieldError
	price, ok := r.Price.Value()
	if ok {
		draft.Price = price
	} else {
		problems = append(problems, FieldError{Field: FieldPrice, Message: MsgPriceNotNumber})
	}
	if r.InStock.present && !r.InStock.valid {
		problems = append(problems, FieldError{Field: FieldInStock, Message: MsgInStockNotBool})
	}

	problems = append(problems, validateDraft(draft, !ok)...)
	if len(problems) > 0 {
		return PlantDraft{}, newValidationError(problems)
	}
	return draft, nil
}

func isNull(b []byte) bool {
	return string(bytes.TrimSpace(b)) == "null"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
