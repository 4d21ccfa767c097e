package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mocksusecase "quaidirect/internal/mocks/usecase"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotifyTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notify-drop", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotifyHandler_NotifyDrop(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("successful dispatch returns per-channel counts", func(t *testing.T) {
		t.Parallel()

		fanoutUC := mocksusecase.NewMockFanoutUsecase(t)
		handler := &NotifyHandler{fanoutUC: fanoutUC, logger: logger}

		dropID := uuid.New()
		fanoutUC.EXPECT().DispatchDropNotifications(mock.Anything, dropID).Return(&usecase.FanoutResult{
			NotificationID: uuid.New(),
			PushTargeted:   6,
			PushSent:       5,
			EmailTargeted:  4,
			EmailSent:      4,
		}, nil)

		c, rec := newNotifyTestContext(t, `{"dropId":"`+dropID.String()+`"}`)

		require.NoError(t, handler.NotifyDrop(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `"message":"notifications dispatched"`)
		assert.Contains(t, body, `"targeted":6`)
		assert.Contains(t, body, `"sent":5`)
		assert.Contains(t, body, `"email":{"sent":4}`)
	})

	t.Run("missing dropId returns 400", func(t *testing.T) {
		t.Parallel()

		fanoutUC := mocksusecase.NewMockFanoutUsecase(t)
		handler := &NotifyHandler{fanoutUC: fanoutUC, logger: logger}

		c, rec := newNotifyTestContext(t, `{}`)

		require.NoError(t, handler.NotifyDrop(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
		fanoutUC.AssertNotCalled(t, "DispatchDropNotifications")
	})

	t.Run("malformed UUID returns 400", func(t *testing.T) {
		t.Parallel()

		fanoutUC := mocksusecase.NewMockFanoutUsecase(t)
		handler := &NotifyHandler{fanoutUC: fanoutUC, logger: logger}

		c, rec := newNotifyTestContext(t, `{"dropId":"not-a-uuid"}`)

		require.NoError(t, handler.NotifyDrop(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "dropId must be a valid UUID")
		fanoutUC.AssertNotCalled(t, "DispatchDropNotifications")
	})

	t.Run("invalid JSON body returns 400", func(t *testing.T) {
		t.Parallel()

		fanoutUC := mocksusecase.NewMockFanoutUsecase(t)
		handler := &NotifyHandler{fanoutUC: fanoutUC, logger: logger}

		c, rec := newNotifyTestContext(t, `{"dropId":`)

		require.NoError(t, handler.NotifyDrop(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fanoutUC.AssertNotCalled(t, "DispatchDropNotifications")
	})

	t.Run("dispatch failure returns 500 with error body", func(t *testing.T) {
		t.Parallel()

		fanoutUC := mocksusecase.NewMockFanoutUsecase(t)
		handler := &NotifyHandler{fanoutUC: fanoutUC, logger: logger}

		dropID := uuid.New()
		fanoutUC.EXPECT().DispatchDropNotifications(mock.Anything, dropID).Return(nil, assert.AnError)

		c, rec := newNotifyTestContext(t, `{"dropId":"`+dropID.String()+`"}`)

		require.NoError(t, handler.NotifyDrop(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})
}
