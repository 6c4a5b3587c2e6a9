package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
)

// InitRouter wires the full route table. Role requirements live here, next to
// the paths they protect; the middlewares only render the shared access
// decision.
func InitRouter(mode string, h *handler.Handler, tokens *auth.TokenManager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)
	router.Use(middleware.Authenticate(tokens))

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", middleware.RequireAPI(), h.Me)

		// Users
		api.GET("/users", middleware.RequireAPI(), h.ListUsers)
		api.GET("/users/:id", middleware.RequireAPI(), h.GetUser)
		api.PUT("/users/:id", middleware.RequireAPI(), h.UpdateUser)
		api.GET("/users/:id/credits", middleware.RequireAPI(), h.CreditHistory)
		api.GET("/users/:id/documents", middleware.RequireAPI(), h.ListUserDocuments)

		// Venues
		api.POST("/venues", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.CreateVenue)
		api.GET("/venues", middleware.RequireAPI(), h.ListVenues)
		api.GET("/venues/:id", middleware.RequireAPI(), h.GetVenue)
		api.PUT("/venues/:id", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.UpdateVenue)
		api.POST("/venues/:id/managers", middleware.RequireAPI(domain.RoleAdmin), h.AddVenueManager)
		api.GET("/venues/:id/bookings", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.ListVenueBookings)
		api.GET("/venues/search", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.SearchPlaces)
		api.GET("/venues/photo", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.PlacePhoto)

		// Shifts
		api.POST("/shifts", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.CreateShift)
		api.GET("/shifts", middleware.RequireAPI(), h.ListShifts)
		api.GET("/shifts/:id", middleware.RequireAPI(), h.GetShift)
		api.POST("/shifts/:id/assign", middleware.RequireAPI(), h.AssignShift)
		api.PUT("/assignments/:id", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.UpdateAssignment)
		api.POST("/shifts/bulk", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.BulkShifts)

		// Bookings
		api.POST("/bookings", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.CreateBooking)
		api.GET("/bookings/mine", middleware.RequireAPI(domain.RoleUser), h.ListMyBookings)

		// Availability
		api.PUT("/availability", middleware.RequireAPI(domain.RoleUser), h.SaveAvailability)
		api.GET("/availability", middleware.RequireAPI(domain.RoleUser), h.GetAvailability)

		// Feedback
		api.POST("/feedback", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.CreateFeedback)
		api.GET("/feedback", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.ListFeedback)
		api.PUT("/feedback/:id/review", middleware.RequireAPI(domain.RoleAdmin), h.ReviewFeedback)

		// Documents
		api.POST("/documents", middleware.RequireAPI(domain.RoleAdmin, domain.RoleVenue), h.ShareDocument)

		// Notifications
		api.GET("/notifications", middleware.RequireAPI(), h.ListNotifications)
		api.PUT("/notifications/:id/read", middleware.RequireAPI(), h.MarkNotificationRead)

		// Credits
		api.POST("/credits", middleware.RequireAPI(domain.RoleAdmin), h.ApplyCredit)
		api.GET("/credits/balance", middleware.RequireAPI(), h.MyBalance)

		// Invitations
		api.POST("/invitations", middleware.RequireAPI(domain.RoleAdmin), h.CreateInvitation)
		api.POST("/invitations/send", middleware.RequireAPI(domain.RoleAdmin), h.ResendInvitation)
		api.GET("/invitations/validate/:token", h.ValidateInvitation)

		// Bootstrap, mounted in development only.
		api.POST("/admin/setup", h.AdminSetup)

		api.GET("/health", h.Health)
	}

	// Alias for load balancer probes that hit the bare path.
	router.GET("/health", h.Health)

	// Page routes render the SPA shell; access decisions become redirects.
	// Each role only ever sees its own area: a signed-in caller landing on
	// another role's page is sent to their own canonical landing page.
	pages := map[string][]domain.Role{
		"/admin":     {domain.RoleAdmin},
		"/venue":     {domain.RoleVenue},
		"/dashboard": {domain.RoleUser},
	}
	for path, roles := range pages {
		router.GET(path, middleware.RequirePage(roles...), servePage)
	}
	router.GET("/", servePage)
	router.GET("/login", servePage)
	router.GET("/signup", servePage)

	return router
}

func servePage(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"page": c.Request.URL.Path})
}
