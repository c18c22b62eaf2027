package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"xavro/internal/database"
	"xavro/internal/domain"
	"xavro/internal/events"
	"xavro/internal/middleware"
	"xavro/internal/modules/auth"
	"xavro/internal/modules/availability"
	"xavro/internal/modules/booking"
	"xavro/internal/modules/room"
	"xavro/internal/modules/showtime"
	"xavro/internal/pkg/dateutil"
	jwtsvc "xavro/internal/pkg/jwt"
	"xavro/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const lookaheadDays = 14

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Room{},
		&domain.RoomCost{},
		&domain.Showtime{},
		&domain.SpecialSchedule{},
		&domain.Customer{},
		&domain.Booking{},
		&domain.Payment{},
	}
	for _, model := range models {
		err := db.AutoMigrate(model)
		require.NoError(t, err, fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	costRepo := repository.NewRoomCostRepository(db)
	showtimeRepo := repository.NewShowtimeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := events.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	availabilityHandler := availability.NewHandler(
		availability.NewService(showtimeRepo, bookingRepo, roomRepo, lookaheadDays))
	roomHandler := room.NewHandler(room.NewService(roomRepo, costRepo, showtimeRepo))
	showtimeHandler := showtime.NewHandler(showtime.NewService(showtimeRepo))
	bookingHandler := booking.NewHandler(
		booking.NewService(bookingRepo, roomRepo, customerRepo, paymentRepo, hub))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		public := api.Group("/")
		{
			roomHandler.RegisterPublicRoutes(public)
			showtimeHandler.RegisterPublicRoutes(public)
			availabilityHandler.RegisterRoutes(public)
		}

		bookingPublic := api.Group("/")

		protected := api.Group("/")
		protected.Use(middleware.Auth(jwtService))
		{
			bookingHandler.RegisterRoutes(bookingPublic, protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				roomHandler.RegisterAdminRoutes(admin)
				showtimeHandler.RegisterAdminRoutes(admin)
			}
		}

		authHandler.RegisterRoutes(api, protected)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	adminUser := &domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@test.com",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, db.Create(adminUser).Error, "Failed to create admin user")

	return &E2ETestSuite{
		router:     r,
		db:         db,
		jwtService: jwtService,
	}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyBytes []byte
	var err error

	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w, nil
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

func (s *E2ETestSuite) adminToken(t *testing.T) string {
	var admin domain.User
	require.NoError(t, s.db.Where("username = ?", "admin").First(&admin).Error)

	token, err := s.jwtService.GenerateToken(admin.ID, string(admin.Role))
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) createCustomer(t *testing.T, email string) int64 {
	c := &domain.Customer{LastName: "Tester", Email: email}
	require.NoError(t, s.db.Create(c).Error)
	return c.ID
}

func idFrom(t *testing.T, resp *TestResponse, key string) int64 {
	obj, ok := resp.Data[key].(map[string]interface{})
	require.True(t, ok, "expected %q object in response data", key)
	idVal, ok := obj["id"].(float64)
	require.True(t, ok, "expected numeric id in %q object", key)
	return int64(idVal)
}

// nextDateOn returns the next date within the lookahead window falling on the
// given schedule weekday (0 = Monday .. 6 = Sunday), at least one day out so
// "today has already started" cannot skew assertions.
func nextDateOn(dayOfWeek int) time.Time {
	d := dateutil.DateOnly(time.Now().UTC()).AddDate(0, 0, 1)
	for dateutil.ScheduleWeekday(d) != dayOfWeek {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestFlow_AuthAndRoomManagement(t *testing.T) {
	suite := setupTestSuite(t)

	var staffToken string

	t.Run("POST /auth/register", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"username": "frontdesk",
			"password": "Password123!",
			"email":    "frontdesk@test.com",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("POST /auth/login", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"username": "frontdesk",
			"password": "Password123!",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		staffToken = resp.Data["token"].(string)
		assert.NotEmpty(t, staffToken)
	})

	t.Run("GET /auth/me", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/auth/me", nil, staffToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "frontdesk", user["username"])
		assert.Equal(t, "employee", user["role"])
	})

	t.Run("employee cannot create rooms", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/rooms", map[string]interface{}{
			"title":       "Forbidden Room",
			"maxCapacity": 8,
			"minCapacity": 2,
			"duration":    60,
		}, staffToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin creates and updates a room", func(t *testing.T) {
		adminToken := suite.adminToken(t)

		w, err := suite.makeRequest("POST", "/api/rooms", map[string]interface{}{
			"title":       "The Vault",
			"maxCapacity": 8,
			"minCapacity": 2,
			"duration":    60,
			"resetBuffer": 15,
		}, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		roomID := idFrom(t, resp, "room")

		w, err = suite.makeRequest("PUT", fmt.Sprintf("/api/rooms/%d", roomID), map[string]interface{}{
			"title":       "The Vault Reloaded",
			"maxCapacity": 10,
			"minCapacity": 2,
			"duration":    60,
		}, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d", roomID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp = parseResponse(t, w)
		roomData := resp.Data["room"].(map[string]interface{})
		assert.Equal(t, "The Vault Reloaded", roomData["title"])
	})
}

func TestFlow_AvailabilityAndBooking(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)

	showDay := 0 // Mondays
	showDate := nextDateOn(showDay)
	customerID := suite.createCustomer(t, "maya@test.com")

	var roomID int64

	t.Run("Setup: room with two slots one weekday", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/rooms", map[string]interface{}{
			"title":       "Cabin Fever",
			"maxCapacity": 6,
			"minCapacity": 2,
			"duration":    75,
		}, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		roomID = idFrom(t, parseResponse(t, w), "room")

		for i, slot := range []map[string]string{
			{"start": "18:00", "end": "19:15"},
			{"start": "20:00", "end": "21:15"},
		} {
			w, err = suite.makeRequest("POST", fmt.Sprintf("/api/rooms/%d/showtimes", roomID), map[string]interface{}{
				"day_of_week": showDay,
				"start_time":  slot["start"],
				"end_time":    slot["end"],
				"timeslot":    i + 1,
			}, adminToken)
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, w.Code)
		}
	})

	t.Run("GET /rooms/:id/availability lists scheduled weekdays only", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d/availability", roomID), nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Dates []string `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotEmpty(t, body.Dates)
		assert.Contains(t, body.Dates, dateutil.FormatDate(showDate))
		for _, d := range body.Dates {
			parsed, err := dateutil.ParseDate(d)
			require.NoError(t, err)
			assert.Equal(t, showDay, dateutil.ScheduleWeekday(parsed))
		}
	})

	t.Run("GET /rooms/:id/timeslots requires a date", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d/timeslots", roomID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Date parameter is required", resp.Error.Message)
	})

	t.Run("POST /bookings takes the first slot", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"room_id":       roomID,
			"customer_id":   customerID,
			"guest_count":   4,
			"show_date":     dateutil.FormatDate(showDate),
			"show_timeslot": 1,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		bookingData := resp.Data["booking"].(map[string]interface{})
		assert.NotEmpty(t, bookingData["order_id"])
	})

	t.Run("double booking the same slot is rejected", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"room_id":       roomID,
			"customer_id":   customerID,
			"guest_count":   3,
			"show_date":     dateutil.FormatDate(showDate),
			"show_timeslot": 1,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "SLOT_TAKEN", resp.Error.Code)
	})

	t.Run("GET /rooms/:id/timeslots marks the booked slot", func(t *testing.T) {
		w, err := suite.makeRequest("GET",
			fmt.Sprintf("/api/rooms/%d/timeslots?date=%s", roomID, dateutil.FormatDate(showDate)), nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		var slots []struct {
			Timeslot int    `json:"timeslot"`
			RoomName string `json:"roomName"`
			IsBooked bool   `json:"isBooked"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
		require.Len(t, slots, 2)
		assert.Equal(t, "Cabin Fever", slots[0].RoomName)
		assert.True(t, slots[0].IsBooked)
		assert.False(t, slots[1].IsBooked)
	})

	t.Run("partially booked date stays available", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d/availability", roomID), nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Dates []string `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Dates, dateutil.FormatDate(showDate))
	})

	t.Run("fully booked date disappears from availability", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"room_id":       roomID,
			"customer_id":   customerID,
			"guest_count":   4,
			"show_date":     dateutil.FormatDate(showDate),
			"show_timeslot": 2,
		}, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d/availability", roomID), nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Dates []string `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotContains(t, body.Dates, dateutil.FormatDate(showDate))
		// The same weekday next week is still open.
		nextWeek := showDate.AddDate(0, 0, 7)
		assert.Contains(t, body.Dates, dateutil.FormatDate(nextWeek))
	})

	t.Run("staff can list and cancel bookings", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/bookings", nil, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		bookings := resp.Data["bookings"].([]interface{})
		require.Len(t, bookings, 2)

		first := bookings[0].(map[string]interface{})
		bookingID := int64(first["id"].(float64))

		w, err = suite.makeRequest("DELETE", fmt.Sprintf("/api/bookings/%d", bookingID), nil, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		// Freeing a slot restores the date.
		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/rooms/%d/availability", roomID), nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Dates []string `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Dates, dateutil.FormatDate(showDate))
	})

	t.Run("bookings require a known room", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"room_id":       99999,
			"customer_id":   customerID,
			"guest_count":   4,
			"show_date":     dateutil.FormatDate(showDate),
			"show_timeslot": 1,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow_RoomDeletionCascade(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)
	customerID := suite.createCustomer(t, "jordan@test.com")
	showDate := nextDateOn(2)

	var roomID, showtimeID int64

	t.Run("Setup: room with a showtime and a booking", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/rooms", map[string]interface{}{
			"title":       "Final Curtain",
			"maxCapacity": 6,
			"minCapacity": 2,
			"duration":    60,
		}, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		roomID = idFrom(t, parseResponse(t, w), "room")

		w, err = suite.makeRequest("POST", fmt.Sprintf("/api/rooms/%d/showtimes", roomID), map[string]interface{}{
			"day_of_week": 2,
			"start_time":  "18:00",
			"end_time":    "19:00",
			"timeslot":    1,
		}, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		showtimeID = idFrom(t, parseResponse(t, w), "showtime")

		w, err = suite.makeRequest("POST", "/api/bookings", map[string]interface{}{
			"room_id":       roomID,
			"customer_id":   customerID,
			"guest_count":   3,
			"show_date":     dateutil.FormatDate(showDate),
			"show_timeslot": 1,
		}, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("DELETE /rooms/:id removes dependent rows", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", fmt.Sprintf("/api/rooms/%d", roomID), nil, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/showtimes/%d", showtimeID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, err = suite.makeRequest("GET", "/api/bookings", nil, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		assert.Empty(t, resp.Data["bookings"], "deleted room must not leave ghost bookings")

		var orphaned int64
		require.NoError(t, suite.db.Model(&domain.Booking{}).Where("room_id = ?", roomID).Count(&orphaned).Error)
		assert.Zero(t, orphaned)
	})
}

func TestFlow_ShowtimeManagement(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.adminToken(t)

	var roomID, showtimeID int64

	t.Run("Setup: create room", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/rooms", map[string]interface{}{
			"title":       "Midnight Express",
			"maxCapacity": 6,
			"minCapacity": 2,
			"duration":    60,
		}, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		roomID = idFrom(t, parseResponse(t, w), "room")
	})

	t.Run("POST /rooms/:id/showtimes validates input", func(t *testing.T) {
		w, err := suite.makeRequest("POST", fmt.Sprintf("/api/rooms/%d/showtimes", roomID), map[string]interface{}{
			"day_of_week": 9,
			"start_time":  "18:00",
			"end_time":    "19:00",
			"timeslot":    1,
		}, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, err = suite.makeRequest("POST", fmt.Sprintf("/api/rooms/%d/showtimes", roomID), map[string]interface{}{
			"day_of_week": 4,
			"start_time":  "6pm",
			"end_time":    "19:00",
			"timeslot":    1,
		}, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /rooms/:id/showtimes creates a slot", func(t *testing.T) {
		w, err := suite.makeRequest("POST", fmt.Sprintf("/api/rooms/%d/showtimes", roomID), map[string]interface{}{
			"day_of_week": 4,
			"start_time":  "18:00",
			"end_time":    "19:00",
			"timeslot":    1,
		}, adminToken)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		showtimeID = idFrom(t, parseResponse(t, w), "showtime")
	})

	t.Run("PUT /rooms/:id/showtimes/:showtimeId reschedules it", func(t *testing.T) {
		w, err := suite.makeRequest("PUT",
			fmt.Sprintf("/api/rooms/%d/showtimes/%d", roomID, showtimeID), map[string]interface{}{
				"day_of_week": 5,
				"start_time":  "19:00",
				"end_time":    "20:00",
				"timeslot":    1,
			}, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		st := resp.Data["showtime"].(map[string]interface{})
		assert.Equal(t, float64(5), st["day_of_week"])
	})

	t.Run("DELETE /showtimes/:id removes it", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", fmt.Sprintf("/api/showtimes/%d", showtimeID), nil, adminToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/showtimes/%d", showtimeID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
