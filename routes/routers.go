package routes

import (
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})
	bookingController := controllers.NewBookingController(bookingService)
	hotelController := controllers.NewHotelController(db, redisCli, bookingService)

	api := router.Group("/api")

	api.GET("/hotels", hotelController.GetHotels)
	api.GET("/hotels/search", hotelController.SearchAvailableRooms)
	api.GET("/hotels/cities", hotelController.SuggestCities)
	api.GET("/hotels/my_hotel", middlewares.AuthMiddleware(), hotelController.MyHotel)
	api.GET("/hotels/:id", hotelController.GetHotelDetail)

	api.GET("/rooms", controllers.GetAllRooms)
	api.GET("/rooms/:id", controllers.GetRoomDetail)
	api.POST("/rooms", middlewares.AuthMiddleware(), controllers.CreateRoom)
	api.PUT("/rooms/:id", middlewares.AuthMiddleware(), controllers.UpdateRoom)
	api.PATCH("/rooms/:id", middlewares.AuthMiddleware(), controllers.PatchRoom)
	api.DELETE("/rooms/:id", middlewares.AuthMiddleware(), controllers.DeleteRoom)

	api.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	api.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	api.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	api.PUT("/bookings/:id", middlewares.AuthMiddleware(), bookingController.UpdateBooking)
	api.PATCH("/bookings/:id", middlewares.AuthMiddleware(), bookingController.PatchBooking)
	api.DELETE("/bookings/:id", middlewares.AuthMiddleware(), bookingController.DeleteBooking)

	api.POST("/register", controllers.Register)
	api.POST("/token", controllers.Token)
	api.POST("/token/refresh", controllers.TokenRefresh)
	api.POST("/auth/google", controllers.AuthGoogle)
	api.DELETE("/auth/logout", controllers.Logout)

	api.POST("/img/upload", middlewares.AuthMiddleware(), controllers.UploadImage)
}
