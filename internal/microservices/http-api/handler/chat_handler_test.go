package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/service"
)

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *mockChatService) HistoryByBooking(ctx context.Context, bookingID, userID int64) ([]models.ChatMessage, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

// chatTestRouter mounts the history routes behind a stand-in for the auth
// middleware that injects the given user id.
func chatTestRouter(svc service.ChatService, userID int64, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/messages")
	if authed {
		group.Use(func(c *gin.Context) {
			c.Set("userID", userID)
		})
	}
	NewChatHandler(svc).RegisterRoutes(group)
	return router
}

func TestChatHandler_History(t *testing.T) {
	svc := new(mockChatService)
	router := chatTestRouter(svc, 1, true)

	sentAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.On("HistoryByBooking", mock.Anything, int64(42), int64(1)).Return([]models.ChatMessage{
		{ID: 1, BookingID: 42, SenderID: 1, ReceiverID: 2, Text: "hi", SentAt: sentAt, SenderName: "Anna Petrova"},
		{ID: 2, BookingID: 42, SenderID: 2, ReceiverID: 1, Text: "hello", SentAt: sentAt.Add(time.Minute), SenderName: "Ivan Orlov"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "Anna Petrova", messages[0].SenderName)
	assert.True(t, messages[0].SentAt.Before(messages[1].SentAt))
	// camelCase field names on the wire
	assert.Contains(t, w.Body.String(), `"bookingId":42`)
	assert.Contains(t, w.Body.String(), `"senderName":"Anna Petrova"`)
}

func TestChatHandler_History_NotParticipant(t *testing.T) {
	svc := new(mockChatService)
	router := chatTestRouter(svc, 99, true)

	svc.On("HistoryByBooking", mock.Anything, int64(42), int64(99)).
		Return(nil, service.ErrNotParticipant)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatHandler_History_BookingNotFound(t *testing.T) {
	svc := new(mockChatService)
	router := chatTestRouter(svc, 1, true)

	svc.On("HistoryByBooking", mock.Anything, int64(404), int64(1)).
		Return(nil, service.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatHandler_History_BadBookingID(t *testing.T) {
	svc := new(mockChatService)
	router := chatTestRouter(svc, 1, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "HistoryByBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatHandler_History_Unauthenticated(t *testing.T) {
	svc := new(mockChatService)
	router := chatTestRouter(svc, 0, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
