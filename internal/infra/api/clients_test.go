//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staykit/internal/infra/api"
	"staykit/internal/pkg/config"
	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *transport.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return transport.NewClient(config.APIConfig{
		BaseURL:  server.URL,
		Timeout:  5 * time.Second,
		Language: "vi",
	}, slog.New(slog.DiscardHandler))
}

func TestCatalogClient(t *testing.T) {
	t.Run("支店一覧はエンベロープ形式を復号する", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/branches", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"id": uuid.NewString(), "name": "Chi nhánh Quận 1", "ratingAvg": 4.5},
				},
				"meta": map[string]any{"total": 7, "page": 1, "pageSize": 1, "totalPages": 7},
			})
		})
		client := api.NewCatalogClient(newTestClient(t, mux))

		items, meta, err := client.ListBranches(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Chi nhánh Quận 1", items[0].Name)
		assert.Equal(t, 7, meta.Total)
	})

	t.Run("省一覧は裸の配列を復号する", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/provinces", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": uuid.NewString(), "name": "Hồ Chí Minh", "code": "HCM"},
				{"id": uuid.NewString(), "name": "Hà Nội", "code": "HN"},
			})
		})
		client := api.NewCatalogClient(newTestClient(t, mux))

		provinces, err := client.ListProvinces(context.Background())
		require.NoError(t, err)
		require.Len(t, provinces, 2)
		assert.Equal(t, "HCM", provinces[0].Code)
	})

	t.Run("部屋一覧は支店IDをクエリで渡す", func(t *testing.T) {
		branchID := uuid.New()
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/rooms", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, branchID.String(), r.URL.Query().Get("branchId"))
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": uuid.NewString(), "branchId": branchID.String(), "name": "Deluxe King"},
			})
		})
		client := api.NewCatalogClient(newTestClient(t, mux))

		rooms, _, err := client.ListRooms(context.Background(), branchID)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, branchID, rooms[0].BranchID)
	})
}

func TestBookingClient(t *testing.T) {
	t.Run("存在しない予約コードはNotFoundとして分類する", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/bookings/{code}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "booking not found"})
		})
		client := api.NewBookingClient(newTestClient(t, mux))

		_, err := client.GetBooking(context.Background(), "BK-404")
		require.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("予約作成は滞在期間をRFC3339で送信する", func(t *testing.T) {
		checkIn := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
		checkOut := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, checkIn.Format(time.RFC3339), body["checkIn"])
			assert.Equal(t, checkOut.Format(time.RFC3339), body["checkOut"])
			assert.Equal(t, "NIGHTLY", body["type"])
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"code": "BK-5001", "status": "ACTIVE"},
			})
		})
		client := api.NewBookingClient(newTestClient(t, mux))

		view, err := client.CreateBooking(context.Background(), commands.BookingDraft{
			RoomID:   uuid.New(),
			BranchID: uuid.New(),
			Type:     "NIGHTLY",
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Adults:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, "BK-5001", view.Code)
	})

	t.Run("キャンセル済み予約の再キャンセルは競合として分類する", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/bookings/{code}/cancel", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "booking is not active"})
		})
		client := api.NewBookingClient(newTestClient(t, mux))

		err := client.CancelBooking(context.Background(), "BK-409")
		require.True(t, errs.Is(err, errs.ErrBookingNotActive))
	})

	t.Run("キャンセルはコードをパスに載せてPOSTする", func(t *testing.T) {
		var gotPath string
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/bookings/{code}/cancel", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		})
		client := api.NewBookingClient(newTestClient(t, mux))

		require.NoError(t, client.CancelBooking(context.Background(), "BK-5002"))
		assert.Equal(t, "/api/bookings/BK-5002/cancel", gotPath)
	})
}

func TestPaymentClient(t *testing.T) {
	t.Run("プロバイダの応答を加工せず返す", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/payments/links", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Booking BK-6001", body["description"])
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"orderCode":     float64(1748772000000),
					"amount":        float64(5000),
					"bin":           "970422",
					"accountNumber": "113366668888",
					"qrCode":        "00020101021238570010A000000727",
					"checkoutUrl":   "https://pay.example.com/web/abc",
					"status":        "PENDING",
				},
			})
		})
		client := api.NewPaymentClient(newTestClient(t, mux))

		view, err := client.CreatePaymentLink(context.Background(), commands.PaymentLinkRequest{
			OrderCode:   1748772000000,
			Amount:      5000,
			Description: "Booking BK-6001",
		})
		require.NoError(t, err)
		assert.Equal(t, "970422", view.Bin)
		assert.Equal(t, "https://pay.example.com/web/abc", view.CheckoutURL)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("プロバイダの拒否は型付きエラーになる", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/payments/links", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "amount below minimum"})
		})
		client := api.NewPaymentClient(newTestClient(t, mux))

		_, err := client.CreatePaymentLink(context.Background(), commands.PaymentLinkRequest{Amount: 1})
		require.True(t, errs.Is(err, errs.ErrPaymentRejected))
	})
}

func TestAuthClient(t *testing.T) {
	t.Run("ログイン成功でアクセストークンを返す", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "guest@example.com", body["email"])
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]string{"accessToken": "header.payload.signature"},
			})
		})
		client := api.NewAuthClient(newTestClient(t, mux))

		token, err := client.Login(context.Background(), "guest@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "header.payload.signature", token)
	})

	t.Run("認証失敗は期限切れとして分類する", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprintln(w, `{"message":"invalid credentials"}`)
		})
		client := api.NewAuthClient(newTestClient(t, mux))

		_, err := client.Login(context.Background(), "guest@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, transport.IsAuthExpired(err))
	})
}
