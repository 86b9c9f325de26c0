package model

import "time"

// User represents a credential record in the `users` table.  A user may
// be linked 1:1 from a visitante or a funcionario; the link lives on the
// other side.  Roles are attached through the `user_roles` join table.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Roles        – role names attached to this user.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Roles        []string  // joined from roles via user_roles
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Role is a named permission tag from the `roles` table.  The canonical
// set is seeded at startup: ADMIN, FUNCIONARIO, CUIDADOR, VETERINARIO,
// VISITANTE.
type Role struct {
	ID   uint8  // roles.id
	Name string // roles.name
}

// Canonical role names.  Stored without any prefix.
const (
	RoleAdmin       = "ADMIN"
	RoleFuncionario = "FUNCIONARIO"
	RoleCuidador    = "CUIDADOR"
	RoleVeterinario = "VETERINARIO"
	RoleVisitante   = "VISITANTE"
)

// SeededRoles lists every role created at startup when absent.
var SeededRoles = []string{RoleAdmin, RoleFuncionario, RoleCuidador, RoleVeterinario, RoleVisitante}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the token value is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
