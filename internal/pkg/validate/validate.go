// Package validate holds the shared validator used for query structs.
package validate

import (
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

var (
	Validate   = New()
	translator ut.Translator
)

func init() {
	translator, _ = ut.New(en.New()).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

func New() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	v.RegisterCustomTypeFunc(nullStringValuer, null.String{})
	return v
}

func nullIntValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.Int); ok {
		if !valuer.Valid {
			return nil
		}
		return valuer.Int64
	}

	return nil
}

func nullStringValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(null.String); ok {
		if !valuer.Valid {
			return nil
		}
		return valuer.String
	}

	return nil
}

type Violation struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*Violation {
	violations := make([]*Violation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, &Violation{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}
	return violations
}

// Struct validates s and returns apperr.ErrInvalidReq carrying the violations
// when it does not pass.
func Struct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return apperr.NewInvalidViolations(translate(ve))
}

// ViolationsOf extracts the violations attached by Struct.
func ViolationsOf(err error) []*Violation {
	var ae *apperr.AppError
	if !errors.As(err, &ae) || ae.Extras == nil {
		return nil
	}
	violations, _ := (*ae.Extras)["violations"].([]*Violation)
	return violations
}
