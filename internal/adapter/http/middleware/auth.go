package middleware

import (
	"net/http"
	"os"
	"strings"

	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalContextKey = "principal"

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization token missing", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Authorization token invalid or expired", http.StatusUnauthorized)
)

// principalClaims is the token shape issued by the external identity
// provider. Token issuance (login, OTP registration) is not this service's
// concern; we only verify the signature and extract the principal.
type principalClaims struct {
	Role        string `json:"role"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// Auth verifies the Bearer token and stores the resulting Principal in the
// gin context. Requests without a valid principal never reach a handler.
func Auth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		var claims principalClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		p := entities.Principal{
			ID:          claims.Subject,
			Role:        entities.Role(claims.Role),
			DisplayName: claims.DisplayName,
		}
		if p.ID == "" || !p.Role.Valid() {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(principalContextKey, p)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal stored by Auth.
func PrincipalFromContext(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

// SetPrincipal injects a principal directly, bypassing token verification.
// Test helper for handler tests.
func SetPrincipal(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(principalContextKey, p)
		c.Next()
	}
}
