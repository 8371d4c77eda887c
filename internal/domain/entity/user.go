package entity

import "time"

// Roles de usuario.
const (
	RoleCEO    = "ceo"        // acceso total: reportes, renombres, eliminación
	RoleIntern = "estagiario" // operación diaria: lotes, ventas, descartes
)

// User cuenta de usuario para la autenticación. Los usuarios son fijos y se
// siembran al arrancar; la contraseña se guarda como hash bcrypt.
type User struct {
	Username     string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
