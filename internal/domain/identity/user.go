package identity

import (
	"strings"

	"github.com/aims/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is the access level granted to a user
type Role string

const (
	RoleSuperAdmin       Role = "super_admin"
	RoleInventoryManager Role = "inventory_manager"
	RoleInventoryUser    Role = "inventory_user"
)

// Roles lists every valid role
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleInventoryManager, RoleInventoryUser}
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleInventoryManager, RoleInventoryUser:
		return true
	}
	return false
}

// Password length limits. bcrypt ignores input beyond 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// User is a staff member who signs in and may be assigned assets
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	Role         Role
	PasswordHash string
}

// NewUser creates a user and hashes the given password
func NewUser(name, email string, role Role, password string) (*User, error) {
	u := &User{BaseEntity: shared.NewBaseEntity()}
	if err := u.apply(name, email, role); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// Update replaces the user's profile fields
func (u *User) Update(name, email string, role Role) error {
	if err := u.apply(name, email, role); err != nil {
		return err
	}
	u.Touch()
	return nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be between 8 and 72 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) apply(name, email string, role Role) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "User email cannot be empty")
	}
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	u.Name = name
	u.Email = email
	u.Role = role
	return nil
}
