package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"nocturna/internal/auth"
	"nocturna/internal/errors"
	"nocturna/internal/live"
	"nocturna/internal/service"
)

const (
	sseRetryMillis    = 3000
	heartbeatInterval = 30 * time.Second
	sessionEventName  = "session"
)

// LiveHandler streams server-sent events.
type LiveHandler struct {
	hub              *live.Hub
	headCountService service.HeadCountService
	authService      service.AuthService
	heartbeat        time.Duration
	log              *logrus.Logger
}

// NewLiveHandler creates a new live handler.
func NewLiveHandler(
	hub *live.Hub,
	headCountService service.HeadCountService,
	authService service.AuthService,
	log *logrus.Logger,
) *LiveHandler {
	return &LiveHandler{
		hub:              hub,
		headCountService: headCountService,
		authService:      authService,
		heartbeat:        heartbeatInterval,
		log:              log,
	}
}

// streamOptions describes one SSE stream.
type streamOptions struct {
	// onOpen writes the first frames after the retry hint.
	onOpen func(w *echo.Response) error
	// frame turns a hub event into an event name and payload.
	frame func(ev live.Event) (string, interface{})
	// authorize runs before every frame and heartbeat; an error ends the stream.
	authorize func(ctx context.Context) error
	// expiresAt ends the stream when reached. Zero means never.
	expiresAt time.Time
}

// Count godoc
// @Summary Live headcount stream
// @Description Server-sent events carrying {count, timestamp}. The current value is sent on connect.
// @Tags live
// @Produce text/event-stream
// @Success 200 {object} live.CountMessage
// @Router /live/count [get]
func (h *LiveHandler) Count(c echo.Context) error {
	// subscribe before reading so no change slips between the two
	sub := h.hub.Subscribe(live.OnlyHeadCount)
	defer h.hub.Unsubscribe(sub)

	hc, err := h.headCountService.Current(c.Request().Context())
	if err != nil {
		return respondError(err)
	}

	return h.stream(c, sub, streamOptions{
		onOpen: func(w *echo.Response) error {
			return writeEvent(w, "", live.CountEvent(hc).Data)
		},
		frame: func(ev live.Event) (string, interface{}) {
			return "", ev.Data
		},
	})
}

// Events godoc
// @Summary Admin event stream
// @Description Server-sent events for reservation changes and headcount updates. The stream ends with a "session" event once the admin session is no longer valid.
// @Tags admin
// @Produce text/event-stream
// @Security BearerAuth
// @Param token query string false "Session token, for clients that cannot set headers"
// @Success 200 {object} live.Event
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/events [get]
func (h *LiveHandler) Events(c echo.Context) error {
	claims, ok := auth.ClaimsFromToken(c.Get("user"))
	if !ok {
		return respondError(errors.ErrSessionInvalid)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	sub := h.hub.Subscribe(nil)
	defer h.hub.Unsubscribe(sub)

	return h.stream(c, sub, streamOptions{
		frame: func(ev live.Event) (string, interface{}) {
			return ev.Type, ev
		},
		authorize: func(ctx context.Context) error {
			return h.authService.ValidateSession(ctx, claims.AdminID, claims.ID)
		},
		expiresAt: expiresAt,
	})
}

// stream writes SSE frames until the client leaves, the subscription closes
// or authorization fails.
func (h *LiveHandler) stream(c echo.Context, sub *live.Subscriber, opts streamOptions) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", sseRetryMillis); err != nil {
		return nil
	}
	if opts.onOpen != nil {
		if err := opts.onOpen(w); err != nil {
			return nil
		}
	}
	w.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	var expired <-chan time.Time
	if !opts.expiresAt.IsZero() {
		timer := time.NewTimer(time.Until(opts.expiresAt))
		defer timer.Stop()
		expired = timer.C
	}

	ctx := c.Request().Context()
	authorized := func() bool {
		if opts.authorize == nil {
			return true
		}
		err := opts.authorize(ctx)
		switch {
		case err == nil:
			return true
		case stderrors.Is(err, errors.ErrSessionInvalid):
			h.endSession(w, err)
		default:
			// the client reconnects after the retry hint and is checked again
			h.log.WithError(err).Warn("admin stream session check failed")
		}
		return false
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-expired:
			h.endSession(w, errors.ErrSessionInvalid)
			return nil
		case <-ticker.C:
			if !authorized() {
				return nil
			}
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case ev, ok := <-sub.C:
			if !ok {
				return nil
			}
			if !authorized() {
				return nil
			}
			name, payload := opts.frame(ev)
			if err := writeEvent(w, name, payload); err != nil {
				h.log.WithError(err).Debug("stream client gone")
				return nil
			}
			w.Flush()
		}
	}
}

// endSession tells the client why the stream stops and where to log in again.
func (h *LiveHandler) endSession(w *echo.Response, cause error) {
	h.log.WithError(cause).Info("admin stream closed, session no longer valid")
	httpErr := errors.MapErrorToHTTP(errors.ErrSessionInvalid)
	if err := writeEvent(w, sessionEventName, httpErr.ToErrorResponse()); err != nil {
		return
	}
	w.Flush()
}

func writeEvent(w *echo.Response, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if name != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", name); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
