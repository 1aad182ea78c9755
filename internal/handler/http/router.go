package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courseadmin/internal/handler/http/middleware"
	"courseadmin/internal/infrastructure/metrics"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type Router struct {
	userHandler       *UserHandler
	statisticsHandler *StatisticsHandler
	paymentHandler    *PaymentHandler
	enrollmentHandler *EnrollmentHandler
	categoryHandler   *CategoryHandler
	cartHandler       *CartHandler
}

func NewRouter(
	userAdminUsecase usecasecontract.IUserAdminUseCase,
	userDetailUsecase usecasecontract.IUserDetailUseCase,
	statisticsUsecase usecasecontract.IStatisticsUseCase,
	paymentUsecase usecasecontract.IPaymentUseCase,
	enrollmentUsecase usecasecontract.IEnrollmentUseCase,
	categoryUsecase usecasecontract.ICategoryUseCase,
	cartUsecase usecasecontract.ICartUseCase,
) *Router {
	return &Router{
		userHandler:       NewUserHandler(userAdminUsecase, userDetailUsecase),
		statisticsHandler: NewStatisticsHandler(statisticsUsecase),
		paymentHandler:    NewPaymentHandler(paymentUsecase),
		enrollmentHandler: NewEnrollmentHandler(enrollmentUsecase),
		categoryHandler:   NewCategoryHandler(categoryUsecase),
		cartHandler:       NewCartHandler(cartUsecase),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.GET("/teachers", r.userHandler.ListTeachers)
		users.GET("/teachers/search", r.userHandler.SearchTeachers)
		users.GET("/students", r.userHandler.ListStudents)
		users.GET("/students/search", r.userHandler.SearchStudents)
		users.GET("/detail/:id", r.userHandler.GetUserDetail)
		users.POST("/createTeacher", r.userHandler.CreateTeacher)
		users.PUT("/updateStatus/:id", r.userHandler.UpdateUserStatus)
	}

	// the route segment keeps its historical spelling
	statistics := api.Group("/statictis")
	{
		statistics.GET("/courses", r.statisticsHandler.GetCourseRevenue)
		statistics.GET("/enroll", r.statisticsHandler.GetMostEnrolledCourses)
		statistics.GET("/users", r.statisticsHandler.GetUserStats)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", r.paymentHandler.ListPayments)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", r.enrollmentHandler.Enroll)
		enrollments.POST("/:id/complete/:lessonId", r.enrollmentHandler.CompleteLesson)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.ListCategories)
		categories.POST("", r.categoryHandler.CreateCategory)
	}

	carts := api.Group("/carts")
	{
		carts.POST("", r.cartHandler.AddToCart)
		carts.GET("/:studentId", r.cartHandler.GetCart)
		carts.DELETE("/:id", r.cartHandler.RemoveFromCart)
	}
}
