package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidateOrder checks an incoming order the way the intake API expects it:
// every contact field present and non-blank, a valid phone number and at
// least one product line.
func ValidateOrder(o *Order) error {
	if o == nil {
		return ErrInvalidOrder
	}
	return check(o, ErrInvalidOrder)
}

func ValidateRestaurant(r *Restaurant) error {
	if r == nil {
		return ErrInvalidRestaurant
	}
	return check(r, ErrInvalidRestaurant)
}

func check(v any, sentinel error) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fieldName(fe), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
