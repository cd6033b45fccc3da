package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// siteText returns the content of one editable text block. A missing row
// renders as the empty string instead of failing the page.
func siteText(identifier string) string {
	var txt models.SiteText
	if err := config.DB.Where("identifiant = ?", identifier).First(&txt).Error; err != nil {
		return ""
	}
	return txt.Content
}

// GET /
func Home(c *gin.Context) {
	var images []models.HomepageImage
	config.DB.Order("ordre").Find(&images)

	var destinations []models.Destination
	config.DB.Limit(3).Find(&destinations)

	var comments []models.Comment
	config.DB.Where("approuve = ?", 1).Order("date DESC").Limit(3).Find(&comments)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Images":       images,
		"Presentation": siteText(models.TextPresentation),
		"Contact":      siteText(models.TextContact),
		"Footer":       siteText(models.TextFooter),
		"Destinations": destinations,
		"Comments":     comments,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// GET /reservation
func ReservationPage(c *gin.Context) {
	var destinations []models.Destination
	config.DB.Select("titre").Find(&destinations)

	c.HTML(http.StatusOK, "reservation.html", gin.H{
		"Destinations": destinations,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// POST /reservation
func SubmitReservation(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nom"))
	email := strings.TrimSpace(c.PostForm("email"))
	phone := strings.TrimSpace(c.PostForm("telephone"))
	destination := strings.TrimSpace(c.PostForm("destination"))
	class := c.PostForm("classe")
	date := strings.TrimSpace(c.PostForm("date"))

	if name == "" || email == "" || phone == "" || destination == "" || date == "" {
		utils.Flash(c, utils.FlashError, "Tous les champs sont obligatoires")
		c.Redirect(http.StatusFound, "/reservation")
		return
	}

	reservation := models.Reservation{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Destination: destination,
		Class:       class,
		Date:        date,
		Status:      models.ReservationPending,
	}
	if err := config.DB.Create(&reservation).Error; err != nil {
		utils.Flash(c, utils.FlashError, "Impossible d'enregistrer la réservation")
		c.Redirect(http.StatusFound, "/reservation")
		return
	}

	utils.Flash(c, utils.FlashSuccess, "Votre réservation a été enregistrée avec succès !")
	c.Redirect(http.StatusFound, "/reservation")
}

// GET /commentaires
func CommentsPage(c *gin.Context) {
	var comments []models.Comment
	config.DB.Where("approuve = ?", 1).Order("date DESC").Find(&comments)

	c.HTML(http.StatusOK, "commentaires.html", gin.H{
		"Comments": comments,
		"Flashes":  utils.TakeFlashes(c),
	})
}

// POST /commentaires
func SubmitComment(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nom"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || message == "" {
		utils.Flash(c, utils.FlashError, "Le nom et le message sont obligatoires")
		c.Redirect(http.StatusFound, "/commentaires")
		return
	}
	if len([]rune(message)) > models.MaxCommentLength {
		utils.Flash(c, utils.FlashError, "Le message ne doit pas dépasser 500 caractères")
		c.Redirect(http.StatusFound, "/commentaires")
		return
	}

	comment := models.Comment{Name: name, Message: message}
	if err := config.DB.Create(&comment).Error; err != nil {
		utils.Flash(c, utils.FlashError, "Impossible d'enregistrer le commentaire")
		c.Redirect(http.StatusFound, "/commentaires")
		return
	}

	utils.Flash(c, utils.FlashSuccess, "Votre commentaire a été soumis et sera publié après modération.")
	c.Redirect(http.StatusFound, "/commentaires")
}

// GET /destinations
func DestinationsPage(c *gin.Context) {
	var destinations []models.Destination
	config.DB.Order("titre").Find(&destinations)

	c.HTML(http.StatusOK, "destinations.html", gin.H{
		"Destinations": destinations,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// GET /tarifs
func PricesPage(c *gin.Context) {
	var destinations []models.Destination
	config.DB.Order("prix").Find(&destinations)

	c.HTML(http.StatusOK, "tarifs.html", gin.H{
		"Destinations": destinations,
		"Flashes":      utils.TakeFlashes(c),
	})
}
