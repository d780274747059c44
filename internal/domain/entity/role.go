package entity

// Role identifies which side of the marketplace a user is on.
type Role string

const (
	// RoleOwner lists properties and is alerted about nearby seekers.
	RoleOwner Role = "owner"
	// RoleSeeker searches for properties and is alerted about nearby listings.
	RoleSeeker Role = "seeker"
)

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleSeeker
}
