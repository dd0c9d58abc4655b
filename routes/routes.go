package routes

import (
	"github.com/LisaMariaKleiner/coderr/configs"
	"github.com/LisaMariaKleiner/coderr/controllers"
	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/middlewares"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/LisaMariaKleiner/coderr/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	offerSvc := services.NewOfferService(db, offerRepo)
	orderSvc := services.NewOrderService(db, orderRepo, offerRepo, userRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, offerRepo, userRepo)
	profileSvc := services.NewProfileService(db, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, userRepo, cfg)
	offerCtrl := controllers.NewOfferController(offerSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	baseInfoCtrl := controllers.NewBaseInfoController(userRepo, offerRepo, reviewRepo)

	api := r.Group("/api")

	// Public
	api.POST("/registration", authCtrl.Registration)
	api.POST("/login", authCtrl.Login)
	api.GET("/base-info", baseInfoCtrl.Get)
	api.GET("/offers", offerCtrl.List)
	api.GET("/offers/:id", offerCtrl.Detail)
	api.GET("/offerdetails/:id", offerCtrl.DetailTier)

	// Offers (business)
	api.POST("/offers", middlewares.AuthMiddleware(cfg.JWTSecret, entity.UserTypeBusiness), offerCtrl.Create)
	offerAuth := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		offerAuth.PUT("/offers/:id", offerCtrl.Update)
		offerAuth.PATCH("/offers/:id", offerCtrl.PartialUpdate)
		offerAuth.DELETE("/offers/:id", offerCtrl.Delete)
	}

	// Profiles
	profile := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/profile/:pk", profileCtrl.Detail)
		profile.PATCH("/profile/:pk", profileCtrl.Update)
		profile.GET("/profiles/business", profileCtrl.ListBusiness)
		profile.GET("/profiles/customer", profileCtrl.ListCustomer)
	}

	// Orders
	orders := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("/orders", orderCtrl.List)
		orders.POST("/orders", orderCtrl.Create)
		orders.PATCH("/orders/:id", orderCtrl.UpdateStatus)
		orders.DELETE("/orders/:id", orderCtrl.Delete)
		orders.GET("/order-count/:business_user_id", orderCtrl.CountInProgress)
		orders.GET("/completed-order-count/:business_user_id", orderCtrl.CountCompleted)
	}

	// Reviews
	reviews := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		reviews.GET("/reviews", reviewCtrl.List)
		reviews.POST("/reviews", reviewCtrl.Create)
		reviews.PATCH("/reviews/:id", reviewCtrl.Update)
		reviews.DELETE("/reviews/:id", reviewCtrl.Delete)
	}
}
