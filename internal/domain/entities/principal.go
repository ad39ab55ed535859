package entities

// Role is the closed set of actor roles known to the marketplace. Roles are
// resolved once at the HTTP boundary and checked per operation; handlers
// never inspect raw role strings.

type Role string

const (
	RoleClient   Role = "client"
	RoleSupplier Role = "supplier"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleSupplier
}

// Principal is the authenticated caller as produced by the external identity
// provider. DisplayName is snapshotted into orders at creation time.
type Principal struct {
	ID          string `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}
