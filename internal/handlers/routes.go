package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/primelab-api/internal/middleware"
)

// PATCH /users/:email and PATCH /users/:action/:id share their first wildcard,
// and gin needs one name per segment.
const userKeyParam = "key"

// RegisterRoutes mounts every endpoint. Each route lists its gates explicitly:
// authed runs token verification, admin additionally requires the admin role.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	authed := middleware.AuthMiddleware(h.Tokens, h.Logger)
	admin := middleware.AdminMiddleware(h.Users, h.Logger)

	r.GET("/", h.Root)
	r.GET("/healthz", h.Health)

	r.POST("/jwt", h.IssueToken)

	r.POST("/users", h.CreateUser)
	r.GET("/users", authed, admin, h.ListUsers)
	r.GET("/users/:email", h.GetUser)
	r.GET("/users/admin/:email", authed, admin, h.CheckAdmin)
	r.PATCH("/users/:"+userKeyParam, authed, h.UpdateProfile)
	r.PATCH("/users/:"+userKeyParam+"/:id", authed, admin, h.ApplyUserAction)

	r.GET("/doctors", h.ListDoctors)

	r.POST("/create-payment-intent", authed, h.CreatePaymentIntent)

	r.GET("/tests", h.ListTests)
	r.POST("/tests", authed, admin, h.CreateTest)
	r.DELETE("/tests/:id", authed, admin, h.DeleteTest)
	r.GET("/test/:id", h.GetTest)
	r.PATCH("/test/:id", authed, admin, h.UpdateTest)
	r.GET("/all-tests", h.PageTests)
	r.GET("/tests-count", h.CountTests)

	r.POST("/banner", authed, admin, h.CreateBanner)
	r.GET("/banners", h.ListBanners)
	r.DELETE("/banners/:id", authed, admin, h.DeleteBanner)
	r.PATCH("/banners/:id", authed, admin, h.ActivateBanner)
	r.PATCH("/banners/:id/activate", authed, admin, h.ActivateBanner)

	r.GET("/recommendations", h.ListRecommendations)
	r.POST("/feedback", h.CreateFeedback)

	r.POST("/reservations", authed, h.CreateReservation)
	r.GET("/reservations", authed, h.ListReservations)
	r.GET("/reservations/:email", authed, h.ListUserReservations)
	r.DELETE("/reservations/:id", authed, h.DeleteReservation)
	r.PATCH("/reservations/:id", authed, admin, h.UpdateReport)

	r.GET("/admin-stats", authed, admin, h.AdminStats)
	r.GET("/booked-stats", authed, admin, h.BookedStats)
	r.GET("/most-booked-tests", h.MostBookedTests)
}
