package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// reservationListURL rebuilds the filtered listing URL so that approve and
// delete links land back on the view the admin was looking at.
func reservationListURL(c *gin.Context) string {
	if statut := c.Query("statut"); statut != "" {
		return "/admin/reservations?statut=" + statut
	}
	return "/admin/reservations"
}

// GET /admin/reservations?statut=tous|en_attente|approuvee
func AdminReservations(c *gin.Context) {
	statut := c.DefaultQuery("statut", "tous")

	var reservations []models.Reservation
	q := config.DB.Order("date_creation DESC")
	if statut != "tous" {
		q = q.Where("statut = ?", statut)
	}
	q.Find(&reservations)

	c.HTML(http.StatusOK, "admin_reservations.html", gin.H{
		"Reservations": reservations,
		"Statut":       statut,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// GET /admin/reservation/:id/approuver
func ApproveReservation(c *gin.Context) {
	config.DB.Model(&models.Reservation{}).
		Where("id = ?", c.Param("id")).
		Update("statut", models.ReservationApproved)

	utils.Flash(c, utils.FlashSuccess, "Réservation approuvée avec succès")
	c.Redirect(http.StatusFound, reservationListURL(c))
}

// GET /admin/reservation/:id/supprimer
func DeleteReservation(c *gin.Context) {
	config.DB.Where("id = ?", c.Param("id")).Delete(&models.Reservation{})

	utils.Flash(c, utils.FlashSuccess, "Réservation supprimée avec succès")
	c.Redirect(http.StatusFound, reservationListURL(c))
}

// GET /admin/reservations/export
//
// Streams every reservation as an .xlsx workbook.
func ExportReservations(c *gin.Context) {
	var reservations []models.Reservation
	config.DB.Order("date_creation DESC").Find(&reservations)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reservations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nom", "Email", "Téléphone", "Destination", "Classe", "Date", "Statut", "Créée le"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range reservations {
		values := []interface{}{
			r.ID, r.Name, r.Email, r.Phone, r.Destination, r.Class, r.Date, r.Status,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		utils.Flash(c, utils.FlashError, "Export impossible")
		c.Redirect(http.StatusFound, "/admin/reservations")
		return
	}

	filename := fmt.Sprintf("reservations_%s.xlsx", uuid.New().String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
