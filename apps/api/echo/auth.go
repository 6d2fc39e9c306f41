package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/edurecords/portal/core"
	"github.com/edurecords/portal/core/auth"
)

var (
	sessionCookieName = core.Conf.GetString("sessionCookie")

	// appJWTConfig is the default JWT auth middleware config.
	// The session token travels in an HttpOnly cookie.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.GetString("secretKey")),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "sessionToken",
		TokenLookup:   "cookie:" + sessionCookieName,
		Claims:        new(Claims),
	}
)

// Claims is the session: a role tag and, for students, the bound roll number.
type Claims struct {
	jwt.StandardClaims
	Role string `json:"role,omitempty"`
	Roll string `json:"roll,omitempty"`
}

// GetSessionClaims builds fresh session claims for an authenticated identity.
func GetSessionClaims(id auth.Identity) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    core.Conf.GetString("appName"),
			Subject:   id.Roll,
			ExpiresAt: now.Add(core.Conf.GetDuration("jwtExpirationDelta")).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role: id.Role,
		Roll: id.Roll,
	}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString(appJWTConfig.SigningKey)
}

// newSessionCookie starts a session: any cookie already held by the client
// is overwritten by the fresh token.
func newSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(core.Conf.GetDuration("jwtExpirationDelta")),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// clearedSessionCookie ends the session on the client.
func clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c Claims) sessionIdentity() auth.Identity {
	return auth.Identity{Role: c.Role, Roll: c.Roll}
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// parseSessionCookie verifies the session cookie outside the JWT middleware.
// Used by the page guards, which redirect instead of returning JSON errors.
func parseSessionCookie(ctx echo.Context) (Claims, error) {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return Claims{}, errUnauthorized
	}

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != appJWTConfig.SigningMethod {
			return nil, errUnauthorized
		}
		return appJWTConfig.SigningKey, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errUnauthorized
	}
	return *claims, nil
}
