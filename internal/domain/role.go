package domain

// Role determines which conversation key a user is matched on and which
// parts of the API they may call.
type Role string

const (
	RoleSchool   Role = "school"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleSchool, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}
