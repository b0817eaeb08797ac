package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nitinco/nexsphere/internal/employee"
	employeeerrors "github.com/nitinco/nexsphere/internal/employee/errors"
	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

type fakeService struct {
	registerResp employee.RegisterEmployeeResponse
	registerErr  error
	registered   []employee.RegisterEmployeeRequest
	all          []employee.EmployeeResponse
	allErr       error
}

func (f *fakeService) Register(_ context.Context, req employee.RegisterEmployeeRequest) (employee.RegisterEmployeeResponse, error) {
	if f.registerErr != nil {
		return employee.RegisterEmployeeResponse{}, f.registerErr
	}
	f.registered = append(f.registered, req)
	return f.registerResp, nil
}

func (f *fakeService) GetAll(_ context.Context) ([]employee.EmployeeResponse, error) {
	return f.all, f.allErr
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	handler := employee.NewHandler(svc)
	r.POST("/register-employee", handler.Register)
	r.GET("/employees", handler.GetAll)
	return r
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Rahul Nair",
		"contact_no":      "9876543210",
		"email":           "rahul.nair@example.in",
		"joining_company": "Meridian Tech",
		"joining_date":    "2026-09-15",
		"position":        "QA Engineer",
	}
}

func TestEmployeeHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{registerResp: employee.RegisterEmployeeResponse{EmployeeID: "emp-1", EmailSent: true}}
		router := setupRouter(svc)

		body, _ := json.Marshal(registerBody())
		req := httptest.NewRequest(http.MethodPost, "/register-employee", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "emp-1", data["employeeId"])
		assert.Equal(t, true, data["emailSent"])

		assert.Len(t, svc.registered, 1)
		assert.Equal(t, "9876543210", svc.registered[0].ContactNo)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		body, _ := json.Marshal(map[string]interface{}{"name": "Rahul Nair"})
		req := httptest.NewRequest(http.MethodPost, "/register-employee", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.registered)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, false, res["ok"])
		assert.Equal(t, "INVALID_INPUT", res["error"].(map[string]interface{})["code"])
	})

	t.Run("malformed phone number rejected", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		payload := registerBody()
		payload["contact_no"] = "12345"
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/register-employee", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.registered)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeService{registerErr: employeeerrors.ErrEmployeeAlreadyExists}
		router := setupRouter(svc)

		body, _ := json.Marshal(registerBody())
		req := httptest.NewRequest(http.MethodPost, "/register-employee", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "CONFLICT", res["error"].(map[string]interface{})["code"])
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	employees := []employee.EmployeeResponse{
		{ID: "1", Name: "Asha", Email: "asha@example.in", JoiningDate: "2026-01-10"},
		{ID: "2", Name: "Vikram", Email: "vikram@example.in", JoiningDate: "2026-03-02"},
		{ID: "3", Name: "Meera", Email: "meera@example.in", JoiningDate: "2026-02-20"},
	}

	t.Run("default listing sorted by name", func(t *testing.T) {
		svc := &fakeService{all: employees}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].([]interface{})
		assert.Len(t, data, 3)
		assert.Equal(t, "Asha", data[0].(map[string]interface{})["name"])
		assert.Equal(t, "Meera", data[1].(map[string]interface{})["name"])
	})

	t.Run("search filters by name or email", func(t *testing.T) {
		svc := &fakeService{all: employees}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees?q=meera", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].([]interface{})
		assert.Len(t, data, 1)
		assert.Equal(t, "Meera", data[0].(map[string]interface{})["name"])
	})

	t.Run("pagination trims the page and reports totals", func(t *testing.T) {
		svc := &fakeService{all: employees}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].([]interface{})
		assert.Len(t, data, 1)

		meta := res["meta"].(map[string]interface{})
		assert.Equal(t, float64(3), meta["total"])
		assert.Equal(t, float64(2), meta["totalPages"])
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc := &fakeService{allErr: assert.AnError}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
