// Package auth implementa el acceso mono-usuario: una credencial fija en
// configuración, verificada con bcrypt, que emite un token de sesión JWT.
// No es una frontera de seguridad real y no debe tomarse como modelo de
// autenticación multi-usuario.
package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login contra la credencial fija.
type AuthUseCase struct {
	email        string
	passwordHash []byte
	jwtCfg       JWTConfig
	notifier     *usecase.NotificationUseCase
}

// NewAuthUseCase hashea la contraseña configurada una sola vez al arranque;
// así la comparación en Login es siempre contra un hash bcrypt y la
// contraseña en claro no se retiene.
func NewAuthUseCase(email, password string, jwtCfg JWTConfig, notifier *usecase.NotificationUseCase) (*AuthUseCase, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("auth: ADMIN_EMAIL y ADMIN_PASSWORD son obligatorios")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear contraseña: %w", err)
	}
	return &AuthUseCase{
		email:        email,
		passwordHash: hash,
		jwtCfg:       jwtCfg,
		notifier:     notifier,
	}, nil
}

// Login verifica la credencial, genera el JWT de sesión y deja la
// notificación de bienvenida. Devuelve ErrUnauthorized si no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(in.Email, uc.email) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.notifier.Append("Bem-vindo ao Nexus CRM!", entity.NotifSuccess)
	return &dto.LoginResponse{Token: token}, nil
}
