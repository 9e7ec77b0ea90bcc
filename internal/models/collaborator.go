package models

import (
	"errors"
	"strings"
)

// Collaborator represents a driver or other staff member in the directory.
type Collaborator struct {
	ID                        string `bson:"_id,omitempty" json:"id"`
	Name                      string `bson:"name" json:"name"`
	RegistrationID            string `bson:"registrationId" json:"registrationId"`
	Email                     string `bson:"email" json:"email"`
	Phone                     string `bson:"phone" json:"phone"`
	JobTitle                  string `bson:"jobTitle" json:"jobTitle"`
	Group                     string `bson:"group" json:"group"` // access group ID
	Password                  string `bson:"password,omitempty" json:"password,omitempty"`
	ChangePasswordOnFirstLogin bool  `bson:"changePasswordOnFirstLogin,omitempty" json:"changePasswordOnFirstLogin,omitempty"`
}

// Validate checks the required collaborator fields before persistence.
func (c *Collaborator) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(c.RegistrationID) == "" {
		return errors.New("registration id is required")
	}
	if strings.TrimSpace(c.Group) == "" {
		return errors.New("access group is required")
	}
	if c.Email != "" && (!strings.Contains(c.Email, "@") || !strings.Contains(c.Email, ".")) {
		return errors.New("invalid email format")
	}
	return nil
}
