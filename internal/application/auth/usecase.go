package auth

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/onboarding"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/jwt"
)

// UseCase autenticación contra el catálogo compartido. El token emitido lleva
// el tenant y el rol de la membresía; las rutas tenant-scoped siguen
// resolviendo el tenant por header, el token solo autentica.
type UseCase struct {
	users       repository.UserRepository
	memberships repository.MembershipRepository
	hasher      onboarding.Hasher
	jwtCfg      config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	users repository.UserRepository,
	memberships repository.MembershipRepository,
	hasher onboarding.Hasher,
	jwtCfg config.JWTConfig,
) *UseCase {
	return &UseCase{users: users, memberships: memberships, hasher: hasher, jwtCfg: jwtCfg}
}

// Login valida credenciales y membresía en el tenant indicado, y emite un JWT.
// Devuelve domain.ErrUnauthorized ante credenciales inválidas sin distinguir
// entre email inexistente y contraseña incorrecta.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" || in.TenantID == "" {
		return nil, domain.ErrValidation
	}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.hasher.Verify(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	membership, err := uc.memberships.GetByUserAndTenant(ctx, user.ID, in.TenantID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret, user.ID, in.TenantID, membership.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.Expiration,
	)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.Expiration * 60,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  membership.Role,
		},
	}, nil
}
