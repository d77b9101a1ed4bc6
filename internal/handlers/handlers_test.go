package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub_back_end/internal/cart"
	"shophub_back_end/internal/config"
	"shophub_back_end/internal/handlers"
	"shophub_back_end/internal/payment"
	"shophub_back_end/internal/routes"
	"shophub_back_end/internal/utils"
)

// newTestRouter monte l'API complète en mode démo : persistance en mémoire,
// gateway sans clé Stripe, mailer sans SMTP.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                   "8080",
		BusinessURL:            "http://localhost:3000",
		CheckoutTimeoutSeconds: 5,
	}

	h := handlers.New(
		cfg,
		cart.NewMemoryPersister(),
		payment.NewGateway("", cfg.BusinessURL),
		utils.NewMailer(utils.SMTPConfig{}),
	)

	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func cartHeader(id string) map[string]string {
	return map[string]string{"X-Cart-ID": id}
}

func validCheckoutForm() map[string]any {
	return map[string]any{
		"email":     "jane@example.com",
		"firstName": "Jane",
		"lastName":  "Doe",
		"address":   "123 Main St, Apt 4B",
		"city":      "New York",
		"state":     "NY",
		"zipCode":   "10001",
		"country":   "United States",
		"phone":     "+1 (555) 123-4567",
	}
}

// --- Catalogue ---

func TestListProducts(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 20, body["count"])

	w = doJSON(r, http.MethodGet, "/api/products?featured=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Less(t, body["count"], float64(20))

	w = doJSON(r, http.MethodGet, "/api/products?category=electronics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Greater(t, body["count"], float64(0))
}

func TestGetProductBySlug(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/products/smart-watch-pro", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Smart Watch Pro", body["name"])

	w = doJSON(r, http.MethodGet, "/api/products/does-not-exist", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode(t, w)["error"])
}

// --- Panier ---

func TestCartRequiresHeader(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/cart", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing X-Cart-ID header", decode(t, w)["error"])
}

func TestCartLifecycle(t *testing.T) {
	r := newTestRouter()
	hdr := cartHeader("client-1")

	// Ajout (quantité 1 par défaut)
	w := doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1"}, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	// Ajout de la même ligne : fusion des quantités
	w = doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1", "quantity": 2}, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 3, body["totalItems"])
	assert.Len(t, body["items"], 1)
	require.Contains(t, body, "summary")

	// Mise à jour de quantité
	w = doJSON(r, http.MethodPut, "/api/cart/update", map[string]any{"productId": "1", "quantity": 5}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	assert.EqualValues(t, 5, decode(t, w)["totalItems"])

	// Retrait du produit
	w = doJSON(r, http.MethodDelete, "/api/cart/1", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	assert.EqualValues(t, 0, decode(t, w)["totalItems"])
}

func TestCartsAreIsolatedByHeader(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1"}, cartHeader("alice"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, cartHeader("bob"))
	assert.EqualValues(t, 0, decode(t, w)["totalItems"])
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "999"}, cartHeader("c"))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode(t, w)["error"])
}

func TestAddInsufficientStock(t *testing.T) {
	r := newTestRouter()

	// Le produit "1" a 45 unités en stock
	w := doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1", "quantity": 100}, cartHeader("c"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Insufficient stock", body["error"])
	assert.EqualValues(t, 45, body["available"])
	assert.EqualValues(t, 100, body["requested"])
}

func TestClearCart(t *testing.T) {
	r := newTestRouter()
	hdr := cartHeader("client-2")

	doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1", "quantity": 2}, hdr)
	doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "6"}, hdr)

	w := doJSON(r, http.MethodDelete, "/api/cart", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	assert.EqualValues(t, 0, decode(t, w)["totalItems"])
}

// --- Frais de port ---

func TestShippingOptions(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/shipping-options?cart_total=30", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.InDelta(t, 9.99, body["shipping"].(float64), 1e-9)
	assert.Equal(t, false, body["isFree"])

	w = doJSON(r, http.MethodGet, "/api/shipping-options?cart_total=75.50", nil, nil)
	body = decode(t, w)
	assert.InDelta(t, 0, body["shipping"].(float64), 1e-9)
	assert.Equal(t, true, body["isFree"])
}

// --- Checkout ---

func TestCheckoutEmptyCart(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/checkout", validCheckoutForm(), cartHeader("empty"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Cart is empty", body["error"])
	assert.Equal(t, "empty", body["state"])
}

func TestCheckoutValidationFailure(t *testing.T) {
	r := newTestRouter()
	hdr := cartHeader("client-3")
	doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1"}, hdr)

	form := validCheckoutForm()
	form["email"] = "nope"
	form["zipCode"] = "1234"

	w := doJSON(r, http.MethodPost, "/api/checkout", form, hdr)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Please enter a valid ZIP code", fields["zipCode"])

	// Le panier reste intact
	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	assert.EqualValues(t, 1, decode(t, w)["totalItems"])
}

func TestCheckoutDemoSuccess(t *testing.T) {
	r := newTestRouter()
	hdr := cartHeader("client-4")
	doJSON(r, http.MethodPost, "/api/cart/add", map[string]any{"productId": "1", "quantity": 2}, hdr)

	w := doJSON(r, http.MethodPost, "/api/checkout", validCheckoutForm(), hdr)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	assert.NotEmpty(t, body["orderId"])
	assert.True(t, strings.HasPrefix(body["sessionId"].(string), payment.MockSessionPrefix))
	assert.Equal(t, "/checkout/success", body["url"])
	assert.Equal(t, "completed", body["state"])
	assert.Contains(t, body["message"], "Demo mode")

	summary := body["summary"].(map[string]any)
	assert.InDelta(t, 2*299.99, summary["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 0, summary["shipping"].(float64), 1e-9)

	// Succès : le panier est vidé
	w = doJSON(r, http.MethodGet, "/api/cart", nil, hdr)
	assert.EqualValues(t, 0, decode(t, w)["totalItems"])
}

// --- Gateway de session de paiement ---

func TestCreateCheckoutSessionRejectsEmptyItems(t *testing.T) {
	r := newTestRouter()

	for _, body := range []any{
		map[string]any{"items": []any{}, "customerEmail": "jane@example.com"},
		map[string]any{"customerEmail": "jane@example.com"},
	} {
		w := doJSON(r, http.MethodPost, "/api/create-checkout-session", body, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid items", decode(t, w)["error"])
	}
}

func TestCreateCheckoutSessionDemoMode(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"items": []map[string]any{
			{"name": "Wireless Headphones", "price": 299.99, "quantity": 1},
		},
		"customerEmail": "jane@example.com",
	}

	w := doJSON(r, http.MethodPost, "/api/create-checkout-session", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, strings.HasPrefix(resp["sessionId"].(string), payment.MockSessionPrefix))
	assert.Equal(t, "/checkout/success", resp["url"])
	assert.Equal(t, "Demo mode: Stripe keys not configured. Add STRIPE_SECRET_KEY to enable real payments.", resp["message"])
}

// --- Confirmation de commande ---

func TestOrderConfirmationMissingData(t *testing.T) {
	r := newTestRouter()

	for _, body := range []any{
		map[string]any{},
		map[string]any{"orderId": "a1b2c3d4"},
		map[string]any{"orderId": "a1b2c3d4", "customerEmail": "jane@example.com", "items": []any{}},
	} {
		w := doJSON(r, http.MethodPost, "/api/order-confirmation", body, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required order data", decode(t, w)["error"])
	}
}

func TestOrderConfirmationDemoModeReturnsPreview(t *testing.T) {
	r := newTestRouter()

	body := map[string]any{
		"orderId":       "a1b2c3d4",
		"customerEmail": "jane@example.com",
		"items": []map[string]any{
			{"name": "Wireless Headphones", "price": 299.99, "quantity": 1},
		},
		"subtotal": 299.99,
		"shipping": 0,
		"tax":      24.0,
		"total":    323.99,
	}

	w := doJSON(r, http.MethodPost, "/api/order-confirmation", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Email service not configured. Add SMTP credentials to environment variables.", resp["message"])
	preview := resp["preview"].(string)
	assert.Contains(t, preview, "Order #a1b2c3d4")
	assert.Contains(t, preview, "Wireless Headphones")
}

// --- Contact ---

func TestContactForm(t *testing.T) {
	r := newTestRouter()

	valid := map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Order question",
		"message": "Where is my package? It has been two weeks already.",
	}
	w := doJSON(r, http.MethodPost, "/api/contact", valid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	valid["message"] = "Too short"
	w = doJSON(r, http.MethodPost, "/api/contact", valid, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]any)
	assert.Equal(t, "Message must be at least 20 characters", fields["message"])
}

// --- Contrats HTTP transverses ---

func TestPreflightReturnsEmptyOK(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodOptions, "/api/create-checkout-session", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/create-checkout-session", nil, nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", decode(t, w)["error"])
}
