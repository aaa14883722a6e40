package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
	"github.com/continuum-hq/model-router/pkg/api"
)

const authCacheTTL = 5 * time.Minute

// Auth checks for a valid Bearer token in the Authorization header. Static
// keys from config pass directly; anything else is hashed and looked up in
// the store, with a short-lived cache in front.
func Auth(repo store.Repository, cache ports.CacheService, staticKeys []string) gin.HandlerFunc {
	staticMap := make(map[string]bool)
	for _, k := range staticKeys {
		staticMap[k] = true
	}

	return func(c *gin.Context) {
		if appName := c.GetHeader("X-App-Name"); appName != "" {
			ctx := context.WithValue(c.Request.Context(), store.ContextKeyAppName, appName)
			c.Request = c.Request.WithContext(ctx)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid Authorization header format"})
			return
		}

		token := parts[1]

		if staticMap[token] {
			c.Next()
			return
		}

		hash := sha256.Sum256([]byte(token))
		hashedHex := hex.EncodeToString(hash[:])

		key, err := lookupKey(c.Request.Context(), repo, cache, hashedHex)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid API Key"})
			return
		}

		// Inject key into context for downstream use (logging)
		ctx := context.WithValue(c.Request.Context(), store.ContextKeyAPIKey, key)
		c.Request = c.Request.WithContext(ctx)

		// Update last used timestamp (async)
		go func() {
			_ = repo.APIKeys().UpdateUsage(context.Background(), key.ID)
		}()

		c.Next()
	}
}

func lookupKey(ctx context.Context, repo store.Repository, cache ports.CacheService, hash string) (*model.APIKey, error) {
	cacheKey := "apikey:" + hash

	var cached model.APIKey
	if cache != nil {
		if err := cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	key, err := repo.APIKeys().GetByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.Set(ctx, cacheKey, key, authCacheTTL)
	}

	return key, nil
}
