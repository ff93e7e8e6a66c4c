package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	"travels/internal/config"
	h "travels/internal/http/handlers"
	"travels/internal/http/middleware"
	"travels/internal/repositories"
	"travels/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// NewRouter wires repositories, services and handlers onto a Gin engine.
// rdb may be nil; auth rate limiting is skipped in that case.
func NewRouter(env config.Env, db *sql.DB, rdb *redis.Client) *gin.Engine {
	users := repositories.UserRepository{DB: db}
	flights := repositories.FlightRepository{DB: db}
	flightBookings := repositories.FlightBookingRepository{DB: db}
	destinations := repositories.DestinationRepository{DB: db}
	airports := repositories.AirportRepository{DB: db}
	packages := repositories.PackageRepository{DB: db}
	bookings := repositories.BookingRepository{DB: db}
	reviews := repositories.ReviewRepository{DB: db}
	wishlist := repositories.WishlistRepository{DB: db}

	authSvc := services.AuthService{Users: users, JWTSecret: env.JWTSecret, BcryptCost: env.BcryptCost}
	bookingSvc := services.BookingService{DB: db, Flights: flights, Bookings: flightBookings}
	packageBookingSvc := services.PackageBookingService{Packages: packages, Bookings: bookings}
	reviewSvc := services.ReviewService{Packages: packages, Reviews: reviews}
	wishlistSvc := services.WishlistService{Packages: packages, Wishlists: wishlist}
	searchSvc := services.SearchService{Packages: packages, Destinations: destinations}
	docsSvc := services.DocsService{FlightBookings: flightBookings, PackageBookings: bookings, Packages: packages}

	system := h.SystemHandler{DB: db}
	authH := h.AuthHandler{Svc: authSvc}
	destinationH := h.DestinationHandler{Repo: destinations}
	airportH := h.AirportHandler{Repo: airports}
	flightH := h.FlightHandler{Flights: flights, Bookings: bookingSvc, Docs: docsSvc}
	packageH := h.PackageHandler{Repo: packages}
	bookingH := h.BookingHandler{Svc: packageBookingSvc, Docs: docsSvc}
	reviewH := h.ReviewHandler{Svc: reviewSvc}
	wishlistH := h.WishlistHandler{Svc: wishlistSvc}
	searchH := h.SearchHandler{Svc: searchSvc}

	authRequired := middleware.Auth(authSvc)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"message": "Route not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.GET("/me", authRequired, authH.Me)

		api.GET("/destinations", destinationH.List)
		api.GET("/destinations/:id", destinationH.Get)

		api.GET("/airports/search", airportH.Search)

		flightGroup := api.Group("/flights")
		flightGroup.GET("/search", flightH.Search)
		flightGroup.POST("/booking", authRequired, flightH.CreateBooking)

		packageGroup := api.Group("/packages")
		packageGroup.GET("", packageH.List)
		packageGroup.GET("/:id", packageH.Get)
		packageGroup.POST("", authRequired, packageH.Create)

		bookingGroup := api.Group("/bookings", authRequired)
		bookingGroup.POST("", bookingH.Create)
		bookingGroup.GET("/:id", bookingH.Detail)
		bookingGroup.PUT("/:id/cancel", bookingH.Cancel)
		bookingGroup.GET("/:id/invoice", bookingH.Invoice)

		api.POST("/reviews", authRequired, reviewH.Create)
		api.GET("/reviews", reviewH.ListByPackage)

		users := api.Group("/users", authRequired)
		users.GET("/bookings", bookingH.MyBookings)
		users.GET("/flight-bookings", flightH.MyBookings)
		users.GET("/flight-bookings/:id/e-ticket", flightH.ETicket)
		users.POST("/wishlist", wishlistH.Add)
		users.DELETE("/wishlist", wishlistH.Remove)
		users.GET("/wishlist", wishlistH.List)

		api.GET("/search", searchH.Search)
	}

	return r
}
