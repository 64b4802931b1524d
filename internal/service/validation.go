package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
)

const (
	clockTag    = "clock"
	datetimeTag = "datetime_input"
)

var (
	clockLayouts = []string{"15:04", "15:04:05"}

	// Layouts accepted from datetime-local inputs and API clients, tried in order.
	datetimeLayouts = []string{
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	// translators maps each validator built by NewValidator to its own
	// English translator, since a translator accepts each message key once.
	translators sync.Map
)

func translatorFor(validate *validator.Validate) ut.Translator {
	if trans, ok := translators.Load(validate); ok {
		return trans.(ut.Translator)
	}
	return nil
}

// NewValidator returns a validator reporting errors under form field names
// with English messages, with the clock and datetime_input tags registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
	translators.Store(validate, trans)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		return name
	})

	_ = validate.RegisterValidation(clockTag, func(fl validator.FieldLevel) bool {
		_, ok := parseClock(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation(datetimeTag, func(fl validator.FieldLevel) bool {
		_, err := parseDateTime(fl.Field().String(), time.UTC)
		return err == nil
	})

	registerMessage(validate, trans, clockTag, "{0} must be a time such as 09:30")
	registerMessage(validate, trans, datetimeTag, "{0} must be a date and time such as 2024-03-10T09:30")
	return validate
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(tag, trans, func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, err := t.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

// validateForm runs the struct rules and converts failures into a field map.
func validateForm(validate *validator.Validate, form interface{}) error {
	if err := validate.Struct(form); err != nil {
		return validationFailed(translatorFor(validate), err)
	}
	return nil
}

func validationFailed(trans ut.Translator, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		if trans == nil {
			fields[fe.Field()] = fe.Error()
			continue
		}
		fields[fe.Field()] = fe.Translate(trans)
	}
	return appErrors.Validation(fields)
}

func fieldError(field, message string) error {
	return appErrors.Validation(map[string]string{field: message})
}

// parseDateTime reads value in one of the accepted layouts. Values without an
// offset are interpreted in loc; RFC 3339 values keep their own offset.
func parseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseClock reports whether value is HH:MM or HH:MM:SS and returns it as HH:MM.
func parseClock(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

func formatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02T15:04")
}
