// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldforce/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AssignmentHandler *handler.AssignmentHandler
	VisitHandler      *handler.VisitHandler
	TeamHandler       *handler.TeamHandler
	StoreHandler      *handler.StoreHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	assignmentHandler *handler.AssignmentHandler
	visitHandler      *handler.VisitHandler
	teamHandler       *handler.TeamHandler
	storeHandler      *handler.StoreHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		assignmentHandler: params.AssignmentHandler,
		visitHandler:      params.VisitHandler,
		teamHandler:       params.TeamHandler,
		storeHandler:      params.StoreHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	assignmentGroup := api.Group("/assignments")
	{
		assignmentGroup.GET("", r.assignmentHandler.ListAssignments)
		assignmentGroup.POST("", r.assignmentHandler.CreateAssignment)
		assignmentGroup.POST("/bulk", r.assignmentHandler.CreateAssignmentsBulk)
		assignmentGroup.PUT("/:id", r.assignmentHandler.UpdateAssignment)
		assignmentGroup.DELETE("/:id", r.assignmentHandler.DeleteAssignment)
		assignmentGroup.PATCH("/:id/tasks", r.assignmentHandler.UpdateTaskStatuses)
	}

	visitGroup := api.Group("/visits")
	{
		visitGroup.POST("/submit", r.visitHandler.SubmitVisit)
		visitGroup.GET("", r.visitHandler.ListVisits)
		// Static segments must be registered before the :id route.
		visitGroup.GET("/stats", r.visitHandler.VisitStats)
		visitGroup.GET("/user/:userId", r.visitHandler.ListVisitsByUser)
		visitGroup.GET("/store/:storeId", r.visitHandler.ListVisitsByStore)
		visitGroup.GET("/:id", r.visitHandler.GetVisit)
		visitGroup.PATCH("/:id/status", r.visitHandler.UpdateVisitStatus)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.teamHandler.ListUsers)
		userGroup.GET("/:id", r.teamHandler.GetUser)
		userGroup.GET("/:id/subordinates", r.teamHandler.ListSubordinates)
		userGroup.PATCH("/:id/manager", r.teamHandler.ReassignManager)
	}

	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/:id", r.storeHandler.GetStore)
	}
}
