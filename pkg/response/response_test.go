package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "coursepilot/pkg/errors"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, gin.H{"answer": 42})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != MessageSuccess {
		t.Errorf("resp = %+v", resp)
	}
}

func TestErrorHTTPError(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "already exists"))
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "already exists" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestErrorPlain(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "bad payload"))
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		InternalError(c, pkgErrors.NewHTTPError(500, "secret database path"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != DefaultErrorMessage {
		t.Errorf("message = %q, internals must not leak", resp.Message)
	}
}
