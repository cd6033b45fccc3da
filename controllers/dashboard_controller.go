package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/middleware"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// GET /admin/dashboard
func Dashboard(c *gin.Context) {
	var (
		totalReservations   int64
		pendingReservations int64
		totalComments       int64
		pendingComments     int64
		totalDestinations   int64
	)
	config.DB.Model(&models.Reservation{}).Count(&totalReservations)
	config.DB.Model(&models.Reservation{}).Where("statut = ?", models.ReservationPending).Count(&pendingReservations)
	config.DB.Model(&models.Comment{}).Count(&totalComments)
	config.DB.Model(&models.Comment{}).Where("approuve = ?", 0).Count(&pendingComments)
	config.DB.Model(&models.Destination{}).Count(&totalDestinations)

	var latestReservations []models.Reservation
	config.DB.Order("date_creation DESC").Limit(5).Find(&latestReservations)

	var latestComments []models.Comment
	config.DB.Order("date DESC").Limit(5).Find(&latestComments)

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Username":            c.GetString(middleware.CtxAdminUser),
		"TotalReservations":   totalReservations,
		"PendingReservations": pendingReservations,
		"TotalComments":       totalComments,
		"PendingComments":     pendingComments,
		"TotalDestinations":   totalDestinations,
		"LatestReservations":  latestReservations,
		"LatestComments":      latestComments,
		"Flashes":             utils.TakeFlashes(c),
	})
}
