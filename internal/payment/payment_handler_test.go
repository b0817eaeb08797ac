package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nitinco/nexsphere/internal/payment"
	paymenterrors "github.com/nitinco/nexsphere/internal/payment/errors"
	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

type fakeService struct {
	orderResp    payment.CreateOrderResponse
	orderErr     error
	registerResp payment.RegisterEmployerResponse
	registerErr  error
	manualResp   payment.ManualPaymentResponse
	manualErr    error
	webhookErr   error
	webhookBody  []byte
	webhookSig   string
	all          []payment.PaymentResponse
	allErr       error
}

func (f *fakeService) CreateOrder(_ context.Context, _ payment.CreateOrderRequest) (payment.CreateOrderResponse, error) {
	return f.orderResp, f.orderErr
}

func (f *fakeService) VerifyAndRegister(_ context.Context, _ payment.RegisterEmployerRequest) (payment.RegisterEmployerResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeService) HandleWebhook(_ context.Context, rawBody []byte, signature string) error {
	f.webhookBody = rawBody
	f.webhookSig = signature
	return f.webhookErr
}

func (f *fakeService) RecordManualPayment(_ context.Context, _ payment.ManualPaymentRequest) (payment.ManualPaymentResponse, error) {
	return f.manualResp, f.manualErr
}

func (f *fakeService) GetAll(_ context.Context) ([]payment.PaymentResponse, error) {
	return f.all, f.allErr
}

func setupRouter(svc payment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	handler := payment.NewHandler(svc)
	r.POST("/employer/create-order", handler.CreateOrder)
	r.POST("/employer/register", handler.RegisterEmployer)
	r.POST("/employer/manual-payment", handler.ManualPayment)
	r.POST("/razorpay/webhook", handler.Webhook)
	r.GET("/payments", handler.GetAll)
	return r
}

func intakeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Asha Verma",
		"company_name":    "Verma Logistics",
		"business_email":  "asha@vermalogistics.in",
		"business_number": "9876543210",
		"location":        "Pune",
		"designation":     "Director",
		"company_size":    40,
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{orderResp: payment.CreateOrderResponse{
			OrderID: "order_live_1", Amount: 99900, Currency: "INR", Key: "rzp_test_key",
		}}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/create-order", intakeBody())

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "order_live_1", data["orderId"])
		assert.Equal(t, float64(99900), data["amount"])
		assert.Equal(t, "rzp_test_key", data["key"])
	})

	t.Run("invalid business email rejected", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		payload := intakeBody()
		payload["business_email"] = "not-an-email"
		w := postJSON(t, router, "/employer/create-order", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("gateway not configured maps to 500", func(t *testing.T) {
		svc := &fakeService{orderErr: paymenterrors.ErrGatewayNotConfigured}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/create-order", intakeBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "SERVICE_UNAVAILABLE", res["error"].(map[string]interface{})["code"])
	})
}

func TestPaymentHandler_RegisterEmployer(t *testing.T) {
	registerPayload := func() map[string]interface{} {
		payload := intakeBody()
		payload["razorpay_order_id"] = "order_live_1"
		payload["razorpay_payment_id"] = "pay_live_1"
		payload["razorpay_signature"] = "deadbeef"
		return payload
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{registerResp: payment.RegisterEmployerResponse{
			EmployerID: "empr-1", PaymentID: "pmt-1", EmailSent: true,
		}}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/register", registerPayload())

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "empr-1", data["employerId"])
		assert.Equal(t, true, data["emailSent"])
	})

	t.Run("missing provider fields rejected", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/register", intakeBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid signature maps to 400", func(t *testing.T) {
		svc := &fakeService{registerErr: paymenterrors.ErrInvalidSignature}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/register", registerPayload())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_STATE", res["error"].(map[string]interface{})["code"])
	})

	t.Run("already used payment maps to 409", func(t *testing.T) {
		svc := &fakeService{registerErr: paymenterrors.ErrPaymentAlreadyUsed}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/register", registerPayload())

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("raw body and signature header reach the service", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		body := []byte(`{"event":"payment.captured","payload":{}}`)
		req := httptest.NewRequest(http.MethodPost, "/razorpay/webhook", bytes.NewBuffer(body))
		req.Header.Set("X-Razorpay-Signature", "sig-123")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, svc.webhookBody)
		assert.Equal(t, "sig-123", svc.webhookSig)
	})

	t.Run("bad signature maps to 400", func(t *testing.T) {
		svc := &fakeService{webhookErr: paymenterrors.ErrInvalidWebhookSignature}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/razorpay/webhook", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_ManualPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{manualResp: payment.ManualPaymentResponse{
			ReferenceID: "manual_ref", Status: payment.StatusPendingVerification,
		}}
		router := setupRouter(svc)

		w := postJSON(t, router, "/employer/manual-payment", intakeBody())

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "pending_verification", data["status"])
	})
}

func TestPaymentHandler_GetAll(t *testing.T) {
	svc := &fakeService{all: []payment.PaymentResponse{
		{ID: "1", OrderID: "order_a", Status: payment.StatusPaid},
	}}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data := res["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "order_a", data[0].(map[string]interface{})["order_id"])
}
