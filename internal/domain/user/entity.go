package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Premium is derived from the billing subscription and is never set by the client.
type User struct {
	id               uuid.UUID
	email            Email
	displayName      string
	passwordHash     string
	role             Role
	isPremium        bool
	stripeCustomerID *string
	lastLogin        *time.Time
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewUser(email Email, displayName, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Email() Email              { return u.email }
func (u *User) DisplayName() string       { return u.displayName }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) IsPremium() bool           { return u.isPremium }
func (u *User) StripeCustomerID() *string { return u.stripeCustomerID }
func (u *User) LastLogin() *time.Time     { return u.lastLogin }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
func (u *User) CanManageFollowUps() bool  { return u.role == RoleRecruiter || u.role == RoleAdmin }
func (u *User) LinkCustomer(id string)    { u.stripeCustomerID = &id }
func (u *User) SetPremium(premium bool)   { u.isPremium = premium }
