package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func cacheTestRouter(store *cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Cache(store, time.Minute))

	hits := 0
	r.GET("/counter", func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, fmt.Sprintf("hit %d", hits))
	})
	return r
}

func getBody(r *gin.Engine, path string) string {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w.Body.String()
}

func TestCache_ServesRepeatedGETsFromStore(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	r := cacheTestRouter(store)

	assert.Equal(t, "hit 1", getBody(r, "/counter"))
	assert.Equal(t, "hit 1", getBody(r, "/counter"), "second GET must come from the cache")
}

func TestCache_FlushServesFreshResponse(t *testing.T) {
	store := cache.New(time.Minute, time.Minute)
	r := cacheTestRouter(store)

	assert.Equal(t, "hit 1", getBody(r, "/counter"))

	store.Flush()

	assert.Equal(t, "hit 2", getBody(r, "/counter"), "flushed entry must be recomputed")
}
