package domain

import "errors"

// ErrInvalidProfileRole is returned when a profile is written for an account
// whose role does not match the profile type.
var ErrInvalidProfileRole = errors.New("Invalid role for this profile type")

type CompanyProfile struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"-"`
	Name      string `json:"name"`
}

type TalentProfile struct {
	ID                 int64  `json:"id"`
	AccountID          int64  `json:"-"`
	ProfileDescription string `json:"profile_description"`
}
