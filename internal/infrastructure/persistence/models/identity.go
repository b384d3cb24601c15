package models

import "github.com/aims/backend/internal/domain/identity"

// UserModel is the persistence model for users
type UserModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null;index"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Role         string `gorm:"type:varchar(32);not null;index"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Role:         identity.Role(m.Role),
		PasswordHash: m.PasswordHash,
	}
}

// FromDomain populates the model from a domain user
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.Role = string(u.Role)
	m.PasswordHash = u.PasswordHash
}

// UserModelFromDomain creates a persistence model from a domain user
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
