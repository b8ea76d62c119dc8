package notif

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"notistack/internal/common"
	"notistack/internal/config"
)

// HTTPHandler exposes the notification read API. Every route expects the
// auth middleware upstream.
type HTTPHandler struct {
	service *NotificationService
	config  *config.Config
}

func NewHTTPHandler(service *NotificationService, config *config.Config) *HTTPHandler {
	return &HTTPHandler{service: service, config: config}
}

// Register mounts the notification routes on the router.
func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/notifications/unread", h.handleUnread).Methods("GET")
	router.HandleFunc("/notifications/read", h.handleMarkRead).Methods("POST")
	router.HandleFunc("/notifications", h.handleIndex).Methods("GET")
}

type unreadResponse struct {
	HasMore              bool                          `json:"has_more"`
	Notifications        []common.NotificationResponse `json:"notifications"`
	UnreadCount          int64                         `json:"unread_count"`
	NotificationEndpoint string                        `json:"notification_endpoint"`
}

func (h *HTTPHandler) handleUnread(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	if userID == 0 {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	includeRead := r.URL.Query().Get("with_read") == "true"
	var maxID uint64
	if raw := r.URL.Query().Get("max_id"); raw != "" {
		maxID, _ = strconv.ParseUint(raw, 10, 64)
	}

	result, err := h.service.Unread(r.Context(), userID, includeRead, maxID)
	if err != nil {
		log.Printf("Failed to get unread feed: %v", err)
		http.Error(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	// The window and counts change under the client; never cache.
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, unreadResponse{
		HasMore:              result.HasMore,
		Notifications:        result.Notifications,
		UnreadCount:          result.UnreadCount,
		NotificationEndpoint: h.notificationEndpoint(r),
	})
}

type bundleResponse struct {
	Notifications []common.NotificationResponse `json:"notifications"`
	Stacks        []common.StackSummary         `json:"stacks"`
	Types         []common.TypeSummary          `json:"types"`
}

type drillResponse struct {
	Notifications []common.NotificationResponse `json:"notifications"`
	Stacks        []common.StackSummary         `json:"stacks"`
}

func (h *HTTPHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	if userID == 0 {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	cursor := ParseCursor(r.URL.Query())
	result, err := h.service.Index(r.Context(), userID, r.URL.Query().Get("group"), cursor)
	if err != nil {
		log.Printf("Failed to get notification index: %v", err)
		http.Error(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	stacks := result.Stacks
	if stacks == nil {
		stacks = []common.StackSummary{}
	}

	if result.Drill {
		writeJSON(w, http.StatusOK, drillResponse{
			Notifications: result.Notifications,
			Stacks:        stacks,
		})
		return
	}

	types := result.Types
	if types == nil {
		types = []common.TypeSummary{}
	}
	writeJSON(w, http.StatusOK, bundleResponse{
		Notifications: result.Notifications,
		Stacks:        stacks,
		Types:         types,
	})
}

type markReadRequest struct {
	IDs []uint64 `json:"ids"`
}

func (h *HTTPHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFromContext(r.Context())
	if userID == 0 {
		http.Error(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkRead(r.Context(), userID, req.IDs); err != nil {
		log.Printf("Failed to mark notifications read: %v", err)
		http.Error(w, "failed to mark notifications read", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// notificationEndpoint resolves the configured websocket endpoint. A bare
// path is anchored to the request host, with the scheme following the
// request's TLS state.
func (h *HTTPHandler) notificationEndpoint(r *http.Request) string {
	endpoint := h.config.Notification.Endpoint
	if !strings.HasPrefix(endpoint, "/") {
		return endpoint
	}

	scheme := "ws"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "wss"
	}
	return scheme + "://" + r.Host + endpoint
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
