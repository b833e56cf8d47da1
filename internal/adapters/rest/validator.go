package rest

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// eventPathRequest is bound from /event/:id.
type eventPathRequest struct {
	EventID int64 `param:"id" validate:"required,gt=0"`
}

// enrollRequest is bound from /event/:id plus an optional JSON body.
type enrollRequest struct {
	EventID     int64  `param:"id" json:"-" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=500"`
}

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("param"); name != "" {
			return name
		}
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

// bindEvent reads and validates the event id path parameter.
func bindEvent(c echo.Context) (eventPathRequest, error) {
	var req eventPathRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return req, errors.New("id must be an integer")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// bindEnroll reads the event id and the optional description body. An empty
// body is accepted.
func bindEnroll(c echo.Context) (enrollRequest, error) {
	var req enrollRequest
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, &req); err != nil {
		return req, errors.New("id must be an integer")
	}
	if err := binder.BindBody(c, &req); err != nil {
		return req, errors.New("body must be a JSON object")
	}
	req.Description = strings.TrimSpace(req.Description)
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// validationDetails renders a validation failure as a short human string.
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "gt":
			parts = append(parts, fe.Field()+" must be greater than "+fe.Param())
		case "max":
			parts = append(parts, fe.Field()+" must be at most "+fe.Param()+" characters")
		default:
			parts = append(parts, fe.Field()+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
