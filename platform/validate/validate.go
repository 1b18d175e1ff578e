package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ribgsilva/memo-api/platform/errs"
)

var v = func() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return val
}()

// Struct checks the validate tags of s and reports the first failure as an errs.InputError
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errs.InputError{
			Field: fe.Field(),
			Err:   fmt.Errorf("failed on the '%s' rule", fe.Tag()),
		}
	}
	return &errs.InputError{Err: err}
}

// Id checks an entity id
func Id(field string, id int64) error {
	if id <= 0 {
		return &errs.InputError{Field: field, Err: fmt.Errorf("must be greater than 0, got %d", id)}
	}
	return nil
}
