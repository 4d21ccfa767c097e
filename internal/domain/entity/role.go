// Package entity contains the core business objects of the project.
package entity

const (
	// RoleUser is the default buyer role.
	RoleUser = "user"
	// RoleFisherman marks accounts allowed to publish drops.
	RoleFisherman = "fisherman"
)
