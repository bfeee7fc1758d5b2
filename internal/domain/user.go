package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCompany Role = "COMPANY"
	RoleTalent  Role = "TALENT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleTalent:
		return true
	}
	return false
}

var (
	ErrEmailRequired = errors.New("the email field must be set")
	ErrRoleRequired  = errors.New("role must be set")
	ErrInvalidRole   = errors.New("invalid role")
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"-"`
	IsSuperuser  bool      `json:"-"`
	DateJoined   time.Time `json:"date_joined"`
	Version      int32     `json:"-"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NormalizeEmail lower-cases the domain part of an email address and leaves
// the local part as submitted. Normalizing twice yields the same value.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

type NewUserParams struct {
	FirstName   string
	LastName    string
	IsStaff     bool
	IsSuperuser bool
}

// NewUser builds a user ready for persistence. Email and role are mandatory
// and the role must be one of the closed enumeration; the password is hashed
// with bcrypt and never kept in plaintext.
func NewUser(email, password string, role Role, params NewUserParams) (*User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if role == "" {
		return nil, ErrRoleRequired
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Email:        NormalizeEmail(email),
		PasswordHash: string(passwordHash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         role,
		IsActive:     true,
		IsStaff:      params.IsStaff,
		IsSuperuser:  params.IsSuperuser,
	}, nil
}

// NewSuperuser forces the admin role and the staff/superuser flags, then goes
// through the same factory checks as NewUser.
func NewSuperuser(email, password string, params NewUserParams) (*User, error) {
	params.IsStaff = true
	params.IsSuperuser = true
	return NewUser(email, password, RoleAdmin, params)
}
