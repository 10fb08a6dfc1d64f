package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"sync/atomic"
	"testing"
	"time"

	"blacktie/src/api"
	"blacktie/src/lib"
	"blacktie/src/models"
	"blacktie/src/session"
	"blacktie/src/types"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server       *httptest.Server
	client       *api.Client
	unreadCalls  atomic.Int64
	garmentCalls atomic.Int64
}

func (s *ClientTestSuite) SetupSuite() {
	os.Setenv("SESSION_FILE", path.Join(s.T().TempDir(), "session.json"))
	session.NewSession(&session.Session{
		Token: "test-token",
		User:  models.User{ID: 1, Name: "Test User", Role: types.ROLE_RENTER},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		bookings := []map[string]any{{
			"id":           42,
			"status":       "APPROVED",
			"booking_date": "2025-12-23T00:00:00Z",
			"return_date":  "2025-12-24T00:00:00Z",
			"total_price":  100.00,
		}}
		if r.URL.Query().Get("status") == "PENDING_APPROVAL" {
			bookings = []map[string]any{}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": bookings, "count": len(bookings)})
	})
	mux.HandleFunc("PUT /bookings/42/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /bookings/7/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": "booking already started"})
	})
	mux.HandleFunc("POST /bookings", func(w http.ResponseWriter, r *http.Request) {
		var body types.CreateBookingRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"id":           77,
			"garment_id":   body.GarmentID,
			"status":       "PENDING_APPROVAL",
			"booking_date": "2025-12-23T00:00:00Z",
			"return_date":  "2025-12-24T00:00:00Z",
			"total_price":  body.TotalPrice,
		}})
	})
	mux.HandleFunc("GET /notifications/unread", func(w http.ResponseWriter, r *http.Request) {
		s.unreadCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"count": 3})
	})
	mux.HandleFunc("PUT /notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /garments", func(w http.ResponseWriter, r *http.Request) {
		s.garmentCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{
			"id":            5,
			"name":          "Midnight Blue Tuxedo",
			"slug":          "midnight-blue-tuxedo",
			"price_per_day": 45.00,
		}}})
	})
	mux.HandleFunc("POST /payments/intent", func(w http.ResponseWriter, r *http.Request) {
		var body types.CreatePaymentIntentRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"id":         "pi_test",
			"booking_id": body.BookingID,
			"amount":     body.Amount,
			"currency":   body.Currency,
			"request_id": body.RequestID,
		}})
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token": "fresh-token",
			"data":  map[string]any{"id": 9, "name": "Login User", "email": "login@example.com"},
		})
	})

	s.server = httptest.NewServer(mux)
}

func (s *ClientTestSuite) TearDownSuite() {
	s.server.Close()
	os.Unsetenv("SESSION_FILE")
	session.NewSession(nil)
}

func (s *ClientTestSuite) SetupTest() {
	lib.NewCache(cache.New(1*time.Minute, 5*time.Minute))
	s.client = api.NewClientWithBaseURL(s.server.URL)
}

func (s *ClientTestSuite) TestListBookings() {
	bookings, err := s.client.ListBookingsByRenter(context.Background(), 1, types.BookingQueryFilters{})
	assert.Nil(s.T(), err)
	assert.Len(s.T(), bookings, 1)
	assert.Equal(s.T(), types.BOOKING_APPROVED, bookings[0].Status)

	filtered, err := s.client.ListBookingsByRenter(context.Background(), 1, types.BookingQueryFilters{
		Status: types.BOOKING_PENDING_APPROVAL,
	})
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), filtered)
}

func (s *ClientTestSuite) TestCreateBookingValidation() {
	// missing dates never leave the client
	_, err := s.client.CreateBooking(context.Background(), types.CreateBookingRequestBody{
		GarmentID:  5,
		TotalPrice: 100.00,
	})
	assert.ErrorIs(s.T(), err, api.ErrValidation)

	// non-positive price is blocked as well
	_, err = s.client.CreateBooking(context.Background(), types.CreateBookingRequestBody{
		GarmentID:   5,
		BookingDate: time.Now().Add(24 * time.Hour).Format("2006-01-02 15:04:05 -07:00"),
		ReturnDate:  time.Now().Add(48 * time.Hour).Format("2006-01-02 15:04:05 -07:00"),
		TotalPrice:  0,
	})
	assert.ErrorIs(s.T(), err, api.ErrValidation)
}

func (s *ClientTestSuite) TestCreateBooking() {
	created, err := s.client.CreateBooking(context.Background(), types.CreateBookingRequestBody{
		GarmentID:   5,
		BookingDate: time.Now().Add(24 * time.Hour).Format("2006-01-02 15:04:05 -07:00"),
		ReturnDate:  time.Now().Add(48 * time.Hour).Format("2006-01-02 15:04:05 -07:00"),
		TotalPrice:  100.00,
	})
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint(77), created.ID)
	assert.Equal(s.T(), types.BOOKING_PENDING_APPROVAL, created.Status)
}

func (s *ClientTestSuite) TestCancelBooking() {
	err := s.client.CancelBooking(context.Background(), 42)
	assert.Nil(s.T(), err)
}

func (s *ClientTestSuite) TestCancelBookingRemoteRejection() {
	err := s.client.CancelBooking(context.Background(), 7)
	assert.NotNil(s.T(), err)

	var apiErr *api.Error
	assert.ErrorAs(s.T(), err, &apiErr)
	assert.Equal(s.T(), http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(s.T(), "booking already started", apiErr.Message)
}

func (s *ClientTestSuite) TestNetworkFailure() {
	broken := api.NewClientWithBaseURL("http://127.0.0.1:1")
	err := broken.CancelBooking(context.Background(), 1)
	assert.NotNil(s.T(), err)

	var apiErr *api.Error
	assert.ErrorAs(s.T(), err, &apiErr)
	assert.Equal(s.T(), 0, apiErr.Status)
}

func (s *ClientTestSuite) TestUnreadCountCached() {
	before := s.unreadCalls.Load()

	count, err := s.client.UnreadCount(context.Background())
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 3, count)

	count, err = s.client.UnreadCount(context.Background())
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 3, count)

	assert.Equal(s.T(), before+1, s.unreadCalls.Load())

	// mark-all invalidates the cached badge
	assert.Nil(s.T(), s.client.MarkAllNotificationsRead(context.Background()))
	_, err = s.client.UnreadCount(context.Background())
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), before+2, s.unreadCalls.Load())
}

func (s *ClientTestSuite) TestCatalogCached() {
	before := s.garmentCalls.Load()

	garments, err := s.client.ListGarments(context.Background(), types.GarmentQueryFilters{})
	assert.Nil(s.T(), err)
	assert.Len(s.T(), garments, 1)

	_, err = s.client.ListGarments(context.Background(), types.GarmentQueryFilters{})
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), before+1, s.garmentCalls.Load())

	// filtered reads bypass the cache
	_, err = s.client.ListGarments(context.Background(), types.GarmentQueryFilters{Category: "tuxedo"})
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), before+2, s.garmentCalls.Load())
}

func (s *ClientTestSuite) TestCreatePaymentIntentMinorUnits() {
	pi, err := s.client.CreatePaymentIntent(context.Background(), 42, 100.00, "usd")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), int64(10000), pi.Amount)
	assert.NotEmpty(s.T(), pi.RequestID)
}

func (s *ClientTestSuite) TestLoginSavesSession() {
	got, err := s.client.Login(context.Background(), types.LoginRequestBody{
		Email:    "login@example.com",
		Password: "secret-password",
	})
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "fresh-token", got.Token)

	current, err := session.Current()
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), uint(9), current.User.ID)

	// restore the suite identity for the remaining tests
	session.NewSession(&session.Session{
		Token: "test-token",
		User:  models.User{ID: 1, Name: "Test User", Role: types.ROLE_RENTER},
	})
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
