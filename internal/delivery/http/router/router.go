// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bootcamper/internal/delivery/http/middleware"
	"bootcamper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const apiPrefix = "/api"

type RouterParams struct {
	fx.In

	BootcampHandler *handler.BootcampHandler
	CourseHandler   *handler.CourseHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bootcampHandler *handler.BootcampHandler
	courseHandler   *handler.CourseHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bootcampHandler: params.BootcampHandler,
		courseHandler:   params.CourseHandler,
		authHandler:     params.AuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(apiPrefix)

	bootcampGroup := api.Group("/bootcamps")
	{
		bootcampGroup.GET("", r.bootcampHandler.ListBootcamps)
		bootcampGroup.POST("", r.bootcampHandler.CreateBootcamp)
		bootcampGroup.GET("/radius/:zipcode/:distance", r.bootcampHandler.GetBootcampsInRadius)
		bootcampGroup.GET("/:id", r.bootcampHandler.GetBootcamp)
		bootcampGroup.PATCH("/:id", r.bootcampHandler.UpdateBootcamp)
		bootcampGroup.DELETE("/:id", r.bootcampHandler.DeleteBootcamp)
		bootcampGroup.PATCH("/:id/photo", r.bootcampHandler.UploadPhoto)

		// Course routes re-mounted under their bootcamp.
		bootcampGroup.GET("/:bootcampId/courses", r.courseHandler.ListBootcampCourses)
		bootcampGroup.POST("/:bootcampId/courses", r.courseHandler.CreateCourse)
	}

	courseGroup := api.Group("/courses")
	{
		courseGroup.GET("", r.courseHandler.ListCourses)
		courseGroup.GET("/:courseId", r.courseHandler.GetCourse)
		courseGroup.PATCH("/:courseId", r.courseHandler.UpdateCourse)
		courseGroup.DELETE("/:courseId", r.courseHandler.DeleteCourse)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}
}
