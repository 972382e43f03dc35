package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(query string, defaultLimit int) Params {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c, defaultLimit)
}

func TestParse(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: 10}, parseQuery("", 10))
	assert.Equal(t, Params{Page: 1, Limit: 50}, parseQuery("limit=abc", 50))
	assert.Equal(t, Params{Page: 3, Limit: 5}, parseQuery("page=3&limit=5", 10))
	assert.Equal(t, Params{Page: 1, Limit: 100}, parseQuery("page=-2&limit=1000", 10))
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{Total: 21, Page: 2, Limit: 10, TotalPages: 3}, NewMeta(21, Params{Page: 2, Limit: 10}))
	assert.Equal(t, 0, NewMeta(0, Params{Page: 1, Limit: 10}).TotalPages)
}
