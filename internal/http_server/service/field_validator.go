// Package service
package service

import (
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/service"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

func (v *FieldValidator) CheckInt(value int) *ApiStatus {
	if value > v.Max {
		return v.ErrLong
	}
	if value < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	identityValidator   *FieldValidator
	passwordValidator   *FieldValidator
	designatorValidator *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	identityValidator = &FieldValidator{
		Min:      config.IdentityLengthMin,
		Max:      config.IdentityLengthMax,
		ErrShort: &ApiStatus{StatusName: "IDENTITY_TOO_SHORT", Description: "identity is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "IDENTITY_TOO_LONG", Description: "identity is too long", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "password is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "password is too long", HttpCode: BadRequest},
	}
	designatorValidator = &FieldValidator{
		Min:      1,
		Max:      config.DesignatorMaxLen,
		ErrShort: &ApiStatus{StatusName: "DESIGNATOR_TOO_SHORT", Description: "flight designator is empty", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "DESIGNATOR_TOO_LONG", Description: "flight designator is too long", HttpCode: BadRequest},
	}
}
