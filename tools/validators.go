package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError is one entry of the "detail" list of a 422 response.
type FieldError struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

var registerOnce sync.Once

// RegisterValidators teaches gin's validator about decimals and makes it
// report json/form names instead of Go field names. Safe to call many times.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("money", validMoney)
		v.RegisterAlias("optemail", "eq=|email")
	})
}

// maxMoney bounds values that fit a numeric(12,2) column.
var maxMoney = decimal.New(1, 10)

// validMoney accepts decimals with at most two places and magnitude below
// 1e10. The custom type func hands validators a float64, so the exact value
// is read back from the parent struct.
func validMoney(fl validator.FieldLevel) bool {
	d, ok := exactDecimal(fl)
	if !ok {
		var err error
		if d, err = decimal.NewFromString(strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)); err != nil {
			return false
		}
	}
	return d.Equal(d.Truncate(2)) && d.Abs().LessThan(maxMoney)
}

func exactDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := reflect.Indirect(parent.FieldByName(fl.StructFieldName()))
	if !f.IsValid() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// ValidationDetails turns a binding error into field errors located under
// source ("body", "query" or "path").
func ValidationDetails(err error, source string) []FieldError {
	var (
		verrs  validator.ValidationErrors
		typErr *json.UnmarshalTypeError
		synErr *json.SyntaxError
		numErr *strconv.NumError
	)

	switch {
	case errors.As(err, &verrs):
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Type: fe.Tag(),
				Loc:  []string{source, fe.Field()},
				Msg:  message(fe),
			})
		}
		return out
	case errors.As(err, &typErr):
		loc := []string{source}
		if typErr.Field != "" {
			loc = append(loc, strings.Split(typErr.Field, ".")...)
		}
		return []FieldError{{
			Type: "type_error",
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", typErr.Type.String()),
		}}
	case errors.As(err, &synErr), errors.Is(err, ErrEmptyBody):
		return []FieldError{{Type: "json_invalid", Loc: []string{source}, Msg: "JSON decode error"}}
	case errors.As(err, &numErr):
		return []FieldError{{Type: "parse_error", Loc: []string{source}, Msg: fmt.Sprintf("Input should be a valid number, unable to parse %q", numErr.Num)}}
	default:
		return []FieldError{{Type: "value_error", Loc: []string{source}, Msg: err.Error()}}
	}
}

// ErrEmptyBody marks a request that carried no payload at all.
var ErrEmptyBody = errors.New("empty body")

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email", "optemail":
		return "value is not a valid email address"
	case "money":
		return "Input should have at most 2 decimal places and be less than 10000000000 in magnitude"
	case "oneof":
		return "Input should be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "Input should be greater than " + fe.Param()
	case "gte":
		return "Input should be greater than or equal to " + fe.Param()
	case "lte":
		return "Input should be less than or equal to " + fe.Param()
	case "min":
		return "Value should have at least " + fe.Param() + " characters"
	case "max":
		return "Value should have at most " + fe.Param() + " characters"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
