package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	sid, token, err := m.Mint()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sid, got)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	m := NewManager("test-secret")
	other := NewManager("other-secret")

	_, token, err := other.Mint()
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)

	_, err = m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestMiddlewareMintsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("test-secret")

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Body.String()
	require.NotEmpty(t, sid)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)

	// The same cookie resolves to the same session on the next request.
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/", nil)
	req2.AddCookie(cookies[0])
	router.ServeHTTP(w2, req2)

	assert.Equal(t, sid, w2.Body.String())
	assert.Empty(t, w2.Result().Cookies(), "no new cookie on a valid session")
}

func TestMiddlewareReplacesBadCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("test-secret")

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}
