package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/controllers"
	"github.com/tmarchal/agence-voyage/middleware"
	"github.com/tmarchal/agence-voyage/utils"
)

func SetupRoutes(r *gin.Engine) {
	// Uploaded files are streamed back by relative path.
	r.Static("/uploads", utils.UploadDir())

	r.GET("/", controllers.Home)
	r.GET("/reservation", controllers.ReservationPage)
	r.POST("/reservation", middleware.RateLimitPublicForms(), controllers.SubmitReservation)
	r.GET("/commentaires", controllers.CommentsPage)
	r.POST("/commentaires", middleware.RateLimitPublicForms(), controllers.SubmitComment)
	r.GET("/destinations", controllers.DestinationsPage)
	r.GET("/tarifs", controllers.PricesPage)

	r.GET("/admin/login", controllers.LoginPage)
	r.POST("/admin/login", controllers.Login)
	r.GET("/admin/logout", controllers.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", controllers.Dashboard)

		admin.GET("/reservations", controllers.AdminReservations)
		admin.GET("/reservations/export", controllers.ExportReservations)
		admin.GET("/reservation/:id/approuver", controllers.ApproveReservation)
		admin.GET("/reservation/:id/supprimer", controllers.DeleteReservation)

		admin.GET("/commentaires", controllers.AdminComments)
		admin.GET("/commentaire/:id/approuver", controllers.ApproveComment)
		admin.GET("/commentaire/:id/supprimer", controllers.DeleteComment)

		admin.GET("/destinations", controllers.AdminDestinations)
		admin.GET("/destinations/ajouter", controllers.AddDestinationPage)
		admin.POST("/destinations/ajouter", controllers.AddDestination)
		admin.GET("/destination/:id/modifier", controllers.EditDestinationPage)
		admin.POST("/destination/:id/modifier", controllers.EditDestination)
		admin.GET("/destination/:id/supprimer", controllers.DeleteDestination)

		admin.GET("/parametres", controllers.SettingsPage)
		admin.POST("/parametres", controllers.UpdateSettings)
		admin.GET("/image/:id/supprimer", controllers.DeleteHomepageImage)
	}
}
