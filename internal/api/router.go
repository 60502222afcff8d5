package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/errs"
)

// Dependencies - все, что нужно роутеру. Health может быть nil.
type Dependencies struct {
	Validator     CityValidator
	Cities        CityStore
	Users         UserStore
	Picnics       PicnicStore
	Registrations RegistrationStore
	Health        func(ctx context.Context) error
	Now           func() time.Time
	Log           zerolog.Logger
}

// NewRouter собирает gin.Engine со всеми маршрутами /api/v1
func NewRouter(deps Dependencies) *gin.Engine {
	registerFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(deps.Log))
	r.Use(CORS())

	apiGroup := r.Group("/api/v1")
	apiGroup.GET("/health", healthHandler(deps.Health))

	cityController := NewCityController(deps.Validator, deps.Cities, deps.Log)
	cityGroup := apiGroup.Group("/cities")
	{
		cityGroup.GET("/", cityController.GetCities)
		cityGroup.POST("/", cityController.CreateCity)
	}

	userController := NewUserController(deps.Users, deps.Log)
	userGroup := apiGroup.Group("/users")
	{
		userGroup.GET("/", userController.GetUsers)
		userGroup.POST("/", userController.RegisterUser)
	}

	picnicController := NewPicnicController(deps.Picnics, deps.Cities, deps.Users, deps.Registrations, deps.Now, deps.Log)
	picnicGroup := apiGroup.Group("/picnics")
	{
		picnicGroup.GET("/", picnicController.GetPicnics)
		picnicGroup.POST("/", picnicController.CreatePicnic)
	}
	apiGroup.POST("/user-registration/", picnicController.RegisterToPicnic)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, deps.Log, errs.NewNotFoundError("route not found"))
	})

	return r
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "Picnic API",
			"version": "1.0.0",
		})
	}
}
