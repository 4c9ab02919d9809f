// ABOUTME: User domain model mirrors one record returned by the users endpoint
// ABOUTME: Optional fields are pointers so missing keys can be told apart from empty values

package domain

import (
	"bytes"
	"encoding/json"

	coreerrors "users-audit/core/errors"
)

// User represents a single user record as supplied by the remote API
type User struct {
	// ID identifies the user within one fetch batch
	ID int `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Email is nil when the key is absent from the record
	Email *string `json:"email"`

	// Company is nil when the key is absent or null
	Company *Company `json:"company"`

	// mistyped names the first field whose JSON type did not match
	mistyped string
}

// Company is the nested company object of a user record
type Company struct {
	Name *string `json:"name"`
}

// UnmarshalJSON decodes a record field by field. A field with the wrong JSON
// type does not fail decoding; it is remembered and reported by Validate so
// one bad record cannot reject the whole batch.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      json.RawMessage `json:"id"`
		Name    json.RawMessage `json:"name"`
		Email   json.RawMessage `json:"email"`
		Company json.RawMessage `json:"company"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = User{}
	u.decodeField("id", raw.ID, &u.ID)
	u.decodeField("name", raw.Name, &u.Name)
	u.decodeField("email", raw.Email, &u.Email)

	if len(raw.Company) == 0 || isNull(raw.Company) {
		return nil
	}
	var company struct {
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(raw.Company, &company); err != nil {
		u.markMistyped("company")
		return nil
	}
	u.Company = &Company{}
	u.decodeField("company.name", company.Name, &u.Company.Name)

	return nil
}

func (u *User) decodeField(field string, raw json.RawMessage, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		u.markMistyped(field)
	}
}

func (u *User) markMistyped(field string) {
	if u.mistyped == "" {
		u.mistyped = field
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// EmailAddress returns the email or an empty string when absent
func (u *User) EmailAddress() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// CompanyName returns the company name or an empty string when absent
func (u *User) CompanyName() string {
	if u.Company == nil || u.Company.Name == nil {
		return ""
	}
	return *u.Company.Name
}

// Validate reports the first mistyped field, else the first required field
// missing from the record. index is the record's position in its batch and
// only feeds the error.
func (u *User) Validate(index int) error {
	switch {
	case u.mistyped != "":
		return &coreerrors.MalformedRecordError{Index: index, ID: u.ID, Field: u.mistyped, Problem: coreerrors.ProblemWrongType}
	case u.Email == nil:
		return &coreerrors.MalformedRecordError{Index: index, ID: u.ID, Field: "email"}
	case u.Company == nil:
		return &coreerrors.MalformedRecordError{Index: index, ID: u.ID, Field: "company"}
	case u.Company.Name == nil:
		return &coreerrors.MalformedRecordError{Index: index, ID: u.ID, Field: "company.name"}
	}
	return nil
}

// NewUser builds a fully populated record
func NewUser(id int, name, email, company string) User {
	return User{
		ID:      id,
		Name:    name,
		Email:   &email,
		Company: &Company{Name: &company},
	}
}
