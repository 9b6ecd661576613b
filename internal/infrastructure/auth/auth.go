package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
)

// SubjectContextKey is the gin context key holding the authenticated owner
// identifier.
const SubjectContextKey = "auth_subject"

// Validator validates the identity provider's session tokens using JWKS and
// yields the stable subject identifier for the caller.
type Validator struct {
	cfg  *config.Config
	log  zerolog.Logger
	jwks *keyfunc.JWKS
}

// NewValidator initializes JWKS fetching when auth is enabled.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	if !cfg.AuthEnabled {
		return &Validator{cfg: cfg, log: log}, nil
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Msg("jwks refresh error")
		},
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, options)
	if err != nil {
		return nil, err
	}

	return &Validator{
		cfg:  cfg,
		log:  log,
		jwks: jwks,
	}, nil
}

// Middleware resolves the caller's session into a subject identifier. When
// auth is disabled it passes requests through untouched (an optional dev
// subject can be injected for local work).
func (v *Validator) Middleware() gin.HandlerFunc {
	if v == nil || !v.cfg.AuthEnabled {
		devSubject := ""
		if v != nil {
			devSubject = strings.TrimSpace(v.cfg.AuthDevSubject)
		}
		return func(c *gin.Context) {
			if devSubject != "" {
				c.Set(SubjectContextKey, devSubject)
			}
			c.Next()
		}
	}

	return func(c *gin.Context) {
		tokenString := v.sessionToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(tokenString, v.jwks.Keyfunc,
			jwt.WithIssuer(v.cfg.AuthIssuer),
			jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		)
		if err != nil || !token.Valid {
			v.log.Debug().Err(err).Msg("rejected session token")
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if audience := strings.TrimSpace(v.cfg.AuthAudience); audience != "" {
			if !audienceMatches(claims, audience) {
				abortUnauthorized(c)
				return
			}
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(SubjectContextKey, subject)
		c.Set("auth_token", token)
		c.Next()
	}
}

// Ready indicates if the validator is prepared.
func (v *Validator) Ready() bool {
	if v == nil || !v.cfg.AuthEnabled {
		return true
	}
	return v.jwks != nil
}

// Subject returns the authenticated owner identifier for the request.
func Subject(c *gin.Context) (string, bool) {
	val, ok := c.Get(SubjectContextKey)
	if !ok {
		return "", false
	}
	subject, ok := val.(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

// sessionToken pulls the token from the Authorization header or, failing
// that, the identity provider's session cookie.
func (v *Validator) sessionToken(c *gin.Context) string {
	if token := bearerToken(c.GetHeader("Authorization")); token != "" {
		return token
	}
	if name := v.cfg.SessionCookieName; name != "" {
		if cookie, err := c.Cookie(name); err == nil {
			return strings.TrimSpace(cookie)
		}
	}
	return ""
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func audienceMatches(claims jwt.MapClaims, audience string) bool {
	audClaim, hasAud := claims["aud"]
	if !hasAud {
		return true
	}
	switch aud := audClaim.(type) {
	case string:
		return aud == audience
	case []any:
		for _, entry := range aud {
			if s, ok := entry.(string); ok && s == audience {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Unauthorized",
	})
}
