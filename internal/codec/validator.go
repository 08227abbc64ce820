package codec

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
	gdserrors "github.com/gentle-giraffe-apps/GentleDesignSystem/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	hexPairPattern = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hexpair", func(fl validator.FieldLevel) bool {
			return hexPairPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("scaletoken", func(fl validator.FieldLevel) bool {
			value := token.ScaleToken(fl.Field().String())
			for _, known := range token.ScaleTokens() {
				if value == known {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSpec performs schema and cross-field validation on a decoded
// spec. It guards decode only; resolution-time fallbacks cover roles that
// are merely absent.
func ValidateSpec(s *spec.Spec) error {
	if s == nil {
		return gdserrors.NewValidationError("spec", "spec is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(s); err != nil {
		return convertValidationError(err)
	}

	scales := []struct {
		field string
		scale spec.Scale
	}{
		{"layout.spacing", s.Layout.Spacing},
		{"layout.gridGap", s.Layout.GridGap},
		{"layout.touchTarget", s.Layout.TouchTarget},
	}
	for _, entry := range scales {
		if !entry.scale.Monotonic() {
			return gdserrors.NewValidationError(entry.field, "scale must be non-decreasing xs through xxl", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gdserrors.NewValidationError(field, msg, err)
	}

	return gdserrors.NewValidationError("spec", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
