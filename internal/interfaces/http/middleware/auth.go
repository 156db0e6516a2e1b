package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Chaves usadas em c.Locals para a identidade autenticada
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// Auth valida o JWT emitido pelo GoTrue (HS256, segredo do projeto) e expõe
// o id e o e-mail do usuário em c.Locals. Sem token válido, a requisição
// para aqui com 401.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return unauthorized(c)
		}

		c.Locals(LocalUserID, subject)
		if email, ok := claims["email"].(string); ok {
			c.Locals(LocalUserEmail, email)
		}

		return c.Next()
	}
}

// UserID retorna o id do usuário autenticado, ou vazio se não houver.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "não autenticado",
	})
}
