package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agendasalud/clinic-agenda/internal/authz"
	"github.com/agendasalud/clinic-agenda/internal/config"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/session"
)

const ContextTokenID = "tokenID"

// AuthMiddleware valida el bearer token emitido por la API clínica y
// construye la sesión explícita del request.
func AuthMiddleware(cfg *config.Config, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)
		tokenID, _ := claims["jti"].(string)

		s := &session.Session{
			UserID: uint(userID),
			Name:   name,
			Email:  email,
			Role:   role,
		}

		// continuidad: un token sin claims de perfil recupera la sesión
		// persistida del mismo jti
		if s.Name == "" || s.Email == "" {
			if saved, ok := sessions.Load(c.Request.Context(), tokenID); ok && saved.UserID == s.UserID {
				if s.Name == "" {
					s.Name = saved.Name
				}
				if s.Email == "" {
					s.Email = saved.Email
				}
			}
		}

		session.Inject(c, s)
		c.Set(ContextTokenID, tokenID)

		// continuidad de sesión: best-effort
		sessions.Remember(c.Request.Context(), tokenID, s)

		c.Next()
	}
}

// RequireCapability es el guard genérico sobre la tabla de capacidades.
func RequireCapability(cap authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		if !authz.Can(s.Role, cap) {
			httperr.Forbidden(c, "forbidden", "No tienes permisos para esta acción.")
			c.Abort()
			return
		}

		c.Next()
	}
}
