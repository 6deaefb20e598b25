//go:build unit || e2e

package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"staykit/internal/usecase/queries"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const signingSecret = "test-secret"

// Server is an in-process stand-in for the booking backend. It mirrors
// the real contract's quirks: provinces and rooms answer with a bare
// array while branches and bookings are enveloped, and every mutation
// requires a bearer token.
type Server struct {
	*httptest.Server
	Engine *gin.Engine

	mu        sync.Mutex
	hits      map[string]int
	users     map[string]userRecord
	provinces []queries.ProvinceView
	branches  []queries.BranchView
	rooms     map[uuid.UUID][]queries.RoomView
	bookings  map[string]queries.BookingView
	nextCode  int
}

type userRecord struct {
	ID       string
	Password string
	Profile  queries.ProfileView
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		Engine:   gin.New(),
		hits:     map[string]int{},
		users:    map[string]userRecord{},
		rooms:    map[uuid.UUID][]queries.RoomView{},
		bookings: map[string]queries.BookingView{},
		nextCode: 1000,
	}
	s.Engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH"},
		AllowHeaders: []string{"Authorization", "Content-Type", "Accept-Language"},
		MaxAge:       12 * time.Hour,
	}))
	s.routes()

	s.Server = httptest.NewServer(s.Engine)
	t.Cleanup(s.Close)
	return s
}

// Hits reports how many requests reached the given route, letting tests
// assert fetch deduplication and refetch counts.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

func (s *Server) count(route string) {
	s.mu.Lock()
	s.hits[route]++
	s.mu.Unlock()
}

// Fixture seeding

func (s *Server) AddUser(email, password string, profile queries.ProfileView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = userRecord{ID: profile.ID, Password: password, Profile: profile}
}

func (s *Server) AddProvince(p queries.ProvinceView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provinces = append(s.provinces, p)
}

func (s *Server) AddBranch(b queries.BranchView, rooms ...queries.RoomView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches = append(s.branches, b)
	s.rooms[b.ID] = append(s.rooms[b.ID], rooms...)
}

func (s *Server) routes() {
	api := s.Engine.Group("/api")

	api.POST("/auth/login", s.handleLogin)
	api.GET("/provinces", s.handleListProvinces)
	api.GET("/branches", s.handleListBranches)
	api.GET("/rooms", s.handleListRooms)

	authed := api.Group("")
	authed.Use(s.requireAuth)
	authed.GET("/users/me", s.handleProfile)
	authed.GET("/bookings/my", s.handleMyBookings)
	authed.GET("/bookings/:code", s.handleGetBooking)
	authed.POST("/bookings", s.handleCreateBooking)
	authed.POST("/bookings/:code/cancel", s.handleCancelBooking)
	authed.POST("/payments/links", s.handleCreatePaymentLink)
}

func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if len(header) < 8 || header[:7] != "Bearer " {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	token, err := gojwt.Parse(header[7:], func(*gojwt.Token) (any, error) {
		return []byte(signingSecret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	claims := token.Claims.(gojwt.MapClaims)
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

func (s *Server) handleLogin(c *gin.Context) {
	s.count("login")
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}

	s.mu.Lock()
	user, ok := s.users[req.Email]
	s.mu.Unlock()
	if !ok || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(signingSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"accessToken": signed}})
}

// Bare array, no envelope.
func (s *Server) handleListProvinces(c *gin.Context) {
	s.count("provinces")
	s.mu.Lock()
	provinces := s.provinces
	s.mu.Unlock()
	if provinces == nil {
		provinces = []queries.ProvinceView{}
	}
	c.JSON(http.StatusOK, provinces)
}

// Enveloped with meta.
func (s *Server) handleListBranches(c *gin.Context) {
	s.count("branches")
	s.mu.Lock()
	branches := s.branches
	s.mu.Unlock()
	if branches == nil {
		branches = []queries.BranchView{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": branches,
		"meta": queries.ListMeta{Total: len(branches), Page: 1, PageSize: len(branches), TotalPages: 1},
	})
}

// Bare array.
func (s *Server) handleListRooms(c *gin.Context) {
	s.count("rooms")
	branchID, err := uuid.Parse(c.Query("branchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid branch id"})
		return
	}
	s.mu.Lock()
	rooms := s.rooms[branchID]
	s.mu.Unlock()
	if rooms == nil {
		rooms = []queries.RoomView{}
	}
	c.JSON(http.StatusOK, rooms)
}

func (s *Server) handleProfile(c *gin.Context) {
	s.count("profile")
	userID := c.GetString("user_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == userID {
			c.JSON(http.StatusOK, gin.H{"data": user.Profile})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
}

func (s *Server) handleMyBookings(c *gin.Context) {
	s.count("my_bookings")
	s.mu.Lock()
	bookings := make([]queries.BookingView, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"data": bookings,
		"meta": queries.ListMeta{Total: len(bookings), Page: 1, PageSize: len(bookings), TotalPages: 1},
	})
}

func (s *Server) handleGetBooking(c *gin.Context) {
	s.count("get_booking")
	s.mu.Lock()
	booking, ok := s.bookings[c.Param("code")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	s.count("create_booking")
	var req struct {
		RoomID   uuid.UUID `json:"roomId"`
		BranchID uuid.UUID `json:"branchId"`
		Type     string    `json:"type"`
		CheckIn  time.Time `json:"checkIn"`
		CheckOut time.Time `json:"checkOut"`
		Adults   int       `json:"adults"`
		Children int       `json:"children"`
		Infants  int       `json:"infants"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}
	if req.Adults < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "adults must be positive"})
		return
	}

	s.mu.Lock()
	s.nextCode++
	booking := queries.BookingView{
		Code:      fmt.Sprintf("BK-%d", s.nextCode),
		RoomID:    req.RoomID,
		BranchID:  req.BranchID,
		Type:      req.Type,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Adults:    req.Adults,
		Children:  req.Children,
		Infants:   req.Infants,
		Status:    "ACTIVE",
		CreatedAt: time.Now(),
	}
	s.bookings[booking.Code] = booking
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"data": booking})
}

func (s *Server) handleCancelBooking(c *gin.Context) {
	s.count("cancel_booking")
	code := c.Param("code")
	s.mu.Lock()
	booking, ok := s.bookings[code]
	active := ok && booking.Status == "ACTIVE"
	if active {
		booking.Status = "CANCELLED"
		s.bookings[code] = booking
	}
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	if !active {
		c.JSON(http.StatusConflict, gin.H{"message": "booking is not active"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCreatePaymentLink(c *gin.Context) {
	s.count("payment_link")
	var req struct {
		OrderCode   int64  `json:"orderCode"`
		Amount      int64  `json:"amount"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request"})
		return
	}
	if req.Amount < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "amount below minimum"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": queries.PaymentLinkView{
		OrderCode:     req.OrderCode,
		Amount:        req.Amount,
		Description:   req.Description,
		Bin:           "970422",
		AccountNumber: "113366668888",
		AccountName:   "STAYKIT DEMO",
		QRCode:        "00020101021238570010A000000727",
		CheckoutURL:   "https://pay.example.com/web/" + uuid.NewString(),
		Status:        "PENDING",
	}})
}
