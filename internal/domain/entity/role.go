// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of party an Authentication belongs to.
type Role string

const (
	// RoleVendor indicates a food vendor.
	RoleVendor Role = "vendor"
	// RoleCustomer indicates a customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleVendor, RoleCustomer:
		return true
	default:
		return false
	}
}
