package domain

import "time"

// Role is the declared role a user acts under. The ledger gates each
// mutating operation on the caller's role.
type Role string

const (
	RoleProducer     Role = "PRODUCER"
	RoleIntermediary Role = "INTERMEDIARY"
	RoleSeller       Role = "SELLER"
	RoleConsumer     Role = "CONSUMER" // Read-only participant
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleProducer, RoleIntermediary, RoleSeller, RoleConsumer:
		return true
	}
	return false
}

// User represents a registered participant. The user's UserID doubles as the
// caller identity recorded in the custody chain.
type User struct {
	UserID       string    `json:"userID"` // Primary key (UUID), the on-ledger actor identity
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`
}
