package routes

import (
	"net/http"

	"alexportfolio/auth"
	"alexportfolio/handlers"
)

// CORS middleware; the allowed origin comes from configuration.
func withCORS(origin string, next http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	mux *http.ServeMux,
	tokens *auth.TokenManager,
	userHandler *handlers.UserHandler,
	meetingHandler *handlers.MeetingHandler,
	pdfHandler *handlers.PDFHandler,
	corsOrigin string,
) {
	wrap := func(h http.HandlerFunc) http.Handler {
		return withCORS(corsOrigin, handlers.RecoverWrapper(h))
	}

	// User routes
	mux.Handle("/api/signup", wrap(userHandler.Signup))
	mux.Handle("/api/login", wrap(userHandler.Login))
	mux.Handle("/api/create-admin", wrap(userHandler.CreateAdmin))
	mux.Handle("/api/users", wrap(handlers.RequireAuth(tokens,
		handlers.RequireAdmin(userHandler.ListUsers))))

	// Schedule export; the exact pattern wins over the /api/meetings/ prefix.
	mux.Handle("/api/meetings/pdf", wrap(handlers.RequireAuth(tokens,
		handlers.RequireAdmin(pdfHandler.SchedulePDF))))

	// Meeting collection routes
	mux.Handle("/api/meetings", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			meetingHandler.ListMeetings(w, r)
		case http.MethodPost:
			handlers.RequireAuth(tokens, meetingHandler.CreateMeeting)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Delete meeting by ID
	mux.Handle("/api/meetings/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/meetings/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handlers.RequireAuth(tokens, handlers.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			meetingHandler.DeleteMeeting(w, r, id)
		}))(w, r)
	}))
}
