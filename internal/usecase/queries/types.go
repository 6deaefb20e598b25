package queries

import (
	"time"

	"github.com/google/uuid"
)

// ListMeta is the pagination envelope some read endpoints attach. For
// endpoints answering with a bare array it is synthesized from the
// result length.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// BranchView represents read-optimized branch data
type BranchView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ProvinceID   uuid.UUID `json:"provinceId"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	RatingAvg    float64   `json:"ratingAvg"`
}

type BranchDetailView struct {
	BranchView
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}

// RoomView represents read-optimized room data; prices are in minor units
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	BranchID     uuid.UUID `json:"branchId"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	AreaSqm      float64   `json:"areaSqm"`
	PriceHourly  int64     `json:"priceHourly"`
	PriceNightly int64     `json:"priceNightly"`
	PriceDaily   int64     `json:"priceDaily"`
	ThumbnailURL string    `json:"thumbnailUrl"`
}

type RoomDetailView struct {
	RoomView
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}

type ProvinceView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type BookingView struct {
	Code        string    `json:"code"`
	RoomID      uuid.UUID `json:"roomId"`
	BranchID    uuid.UUID `json:"branchId"`
	Type        string    `json:"type"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Infants     int       `json:"infants"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProfileView struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

// PaymentLinkView is the provider payload returned unchanged to the
// caller for display: a bank-transfer QR plus account identifiers keyed
// by order code.
type PaymentLinkView struct {
	OrderCode     int64  `json:"orderCode"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	Bin           string `json:"bin"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	QRCode        string `json:"qrCode"`
	CheckoutURL   string `json:"checkoutUrl"`
	Status        string `json:"status"`
}

// List wrappers: one cache entry stores the items and their meta together.

type BranchList struct {
	Items []BranchView `json:"items"`
	Meta  ListMeta     `json:"meta"`
}

type RoomList struct {
	Items []RoomView `json:"items"`
	Meta  ListMeta   `json:"meta"`
}

type BookingList struct {
	Items []BookingView `json:"items"`
	Meta  ListMeta      `json:"meta"`
}
