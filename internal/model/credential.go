package model

// Role of a station user
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// Credential is a stored login. The password is kept and compared as plain
// text; it is never hashed.
type Credential struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" validate:"required,max=50"`
	Password string `gorm:"type:varchar(255);not null" json:"password,omitempty" validate:"required"`
	Role     Role   `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=ADMIN OPERATOR"`
}

func (Credential) TableName() string {
	return "credentials"
}

// Public returns a copy with the password cleared, safe to send to clients.
func (c *Credential) Public() Credential {
	out := *c
	out.Password = ""
	return out
}
