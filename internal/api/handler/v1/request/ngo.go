package request

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Registry IDs look like "KA-REG-001": dash-separated alphanumeric
// groups, no spaces.
var registrationIDPattern = regexp2.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`, regexp2.None)

type CreateNGORequest struct {
	Name           string `json:"name" binding:"required"`
	RegistrationID string `json:"registration_id" binding:"required"`
	Category       string `json:"category" binding:"required"`
	City           string `json:"city"`
	State          string `json:"state"`
	Verified       bool   `json:"verified"`
}

func (req *CreateNGORequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.RegistrationID, validation.Required, validation.By(validateRegistrationID)),
		validation.Field(&req.Category, validation.Required, validation.In("Air", "Water", "Waste", "Multi")),
		validation.Field(&req.City, validation.Length(0, 100)),
		validation.Field(&req.State, validation.Length(0, 100)),
	)
}

func validateRegistrationID(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("registration_id must be a string")
	}

	matched, err := registrationIDPattern.MatchString(s)
	if err != nil {
		return fmt.Errorf("registrationIDPattern.MatchString -> %w", err)
	}
	if !matched {
		return errors.New("must be a valid registration id")
	}

	return nil
}
