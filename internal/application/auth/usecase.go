package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain"
	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra la lista fija de usuarios del sistema. Esta
// versión trabaja con usuarios sembrados al arrancar (no hay registro
// dinámico); la contraseña se compara contra el hash bcrypt y el token JWT
// lleva el rol para las decisiones RBAC del middleware.
type AuthUseCase struct {
	users  []*entity.User
	jwtCfg JWTConfig
}

// NewAuthUseCase siembra los usuarios fijos con la contraseña indicada y
// construye el caso de uso.
func NewAuthUseCase(seedPassword string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	seed := []struct {
		username, name, role string
	}{
		{"esther", "Esther", entity.RoleCEO},
		{"athyrson", "Athyrson", entity.RoleIntern},
		{"mariana", "Mariana", entity.RoleIntern},
	}
	users := make([]*entity.User, 0, len(seed))
	for _, s := range seed {
		users = append(users, &entity.User{
			Username:     s.username,
			Name:         s.name,
			PasswordHash: string(hash),
			Role:         s.role,
			CreatedAt:    now,
		})
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario/contraseña y devuelve token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user := uc.find(in.Username)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
	}, nil
}

func (uc *AuthUseCase) find(username string) *entity.User {
	for _, u := range uc.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}
