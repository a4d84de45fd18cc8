package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentinfo/internal/app/models/dto"
	"github.com/yigit/studentinfo/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	RegisterValidatorTagNames()
	os.Exit(m.Run())
}

func bindCreateStudent(t *testing.T, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.CreateStudentRequest
	return c.ShouldBindJSON(&req)
}

func TestBindingErrorMessage(t *testing.T) {
	t.Run("complete body binds cleanly", func(t *testing.T) {
		err := bindCreateStudent(t, `{"name":"Ada","rollNo":"42","universityId":"100","year":"4th","department":"CS"}`)
		assert.NoError(t, err)
	})

	t.Run("reports a missing field by its JSON name", func(t *testing.T) {
		err := bindCreateStudent(t, `{"rollNo":"42","universityId":"100","year":"4th","department":"CS"}`)
		require.Error(t, err)
		assert.Equal(t, "name is required", BindingErrorMessage(err))
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		err := bindCreateStudent(t, `{"name":"","rollNo":"42","universityId":"100","year":"4th","department":"CS"}`)
		require.Error(t, err)
		assert.Equal(t, "name is required", BindingErrorMessage(err))
	})

	t.Run("joins several missing fields in record order", func(t *testing.T) {
		err := bindCreateStudent(t, `{"rollNo":"42","universityId":"100","department":"CS"}`)
		require.Error(t, err)
		assert.Equal(t, "name is required, year is required", BindingErrorMessage(err))
	})

	t.Run("null body misses every required field", func(t *testing.T) {
		err := bindCreateStudent(t, `null`)
		require.Error(t, err)
		assert.Equal(t,
			"name is required, rollNo is required, universityId is required, year is required, department is required",
			BindingErrorMessage(err))
	})

	t.Run("malformed body gets a generic message", func(t *testing.T) {
		err := bindCreateStudent(t, `{"name":`)
		require.Error(t, err)
		assert.Equal(t, "invalid request body", BindingErrorMessage(err))
	})
}

func TestHandleAPIError(t *testing.T) {
	runHandler := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		HandleAPIError(c, err)
		return w
	}

	t.Run("validation failures map to 400 with the message", func(t *testing.T) {
		w := runHandler(apperrors.NewValidationError("name is required"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"name is required"}`, w.Body.String())
	})

	t.Run("bad requests map to 400", func(t *testing.T) {
		w := runHandler(apperrors.NewBadRequestError("invalid request body"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
	})

	t.Run("unknown errors map to 500 without leaking details", func(t *testing.T) {
		w := runHandler(errors.New("pipe exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	newRouter := func(captured *string) *gin.Engine {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			*captured = c.GetString("requestID")
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		var captured string
		w := httptest.NewRecorder()
		newRouter(&captured).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		header := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, header)
		assert.Equal(t, header, captured)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("honors a caller supplied id", func(t *testing.T) {
		var captured string
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "trace-me-42")
		newRouter(&captured).ServeHTTP(w, req)

		assert.Equal(t, "trace-me-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "trace-me-42", captured)
	})
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allows any origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/students", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("counts requests by route template and status", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/students", "200")
		before := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("groups unmatched paths together", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
		before := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}
