package api

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jsphweid/fretdex/theory"
)

func newValidator() *validator.Validate {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("note", func(fl validator.FieldLevel) bool {
		_, err := theory.PitchClassOf(fl.Field().String())
		return err == nil
	})
	return v
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "note", "note|eq=Any":
		return "must be one of " + strings.Join(theory.NoteNames(), " ")
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must not exceed " + e.Param()
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}

// validationDetail flattens validator errors into one sorted message.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+" "+friendlyMessage(e))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
