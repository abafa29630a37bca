package routes

import (
	"time"

	"workmate/handlers"
	"workmate/middleware"
	"workmate/models"
	"workmate/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session lifecycle endpoints. They are
// unguarded: the landing policy for already-authenticated visitors lives
// in the handlers themselves.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/login", hb.Auth.LoginPageHandler)
	r.POST("/login", hb.Auth.LoginHandler)
	r.POST("/register", hb.Auth.RegisterHandler)
	r.POST("/logout", hb.Auth.LogoutHandler)
	r.GET("/session", hb.Auth.SessionHandler)
}

// RegisterStudentRoutes registers the student dashboard behind the
// student role guard.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Store) {
	student := r.Group("/student")
	student.Use(middleware.RequireRole(sessions, models.RoleStudent))
	{
		student.GET("", hb.Student.DashboardHandler)
		student.GET("/jobs", hb.Student.ListJobsHandler)
		student.GET("/jobs/search", hb.Student.SearchJobsHandler)
		student.GET("/jobs/sort", hb.Student.SortJobsHandler)
		student.GET("/jobs/suggested", hb.Student.SuggestedJobsHandler)
		student.POST("/jobs/:id/apply", hb.Student.ApplyHandler)
		student.GET("/profile", hb.Student.ProfileHandler)
	}
}

// RegisterProviderRoutes registers the provider dashboard behind the
// provider role guard.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Store) {
	provider := r.Group("/provider")
	provider.Use(middleware.RequireRole(sessions, models.RoleProvider))
	{
		provider.GET("", hb.Provider.DashboardHandler)
		provider.GET("/jobs", hb.Provider.ListJobsHandler)
		provider.POST("/jobs", hb.Provider.CreateJobHandler)
		provider.PUT("/jobs/:id", hb.Provider.UpdateJobHandler)
		provider.DELETE("/jobs/:id", hb.Provider.DeleteJobHandler)
		provider.GET("/profile", hb.Provider.ProfileHandler)
		provider.POST("/students/:id/rate", hb.Provider.RateStudentHandler)
		provider.POST("/assignments/optimal", hb.Provider.OptimalAssignmentHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", hb.Home.Landing)
	r.GET("/health", hb.Home.Health)

	RegisterAuthRoutes(r, hb)
	RegisterStudentRoutes(r, hb, sessions)
	RegisterProviderRoutes(r, hb, sessions)
}
