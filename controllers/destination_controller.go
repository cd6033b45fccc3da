package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// destinationForm carries the validated fields shared by add and edit.
type destinationForm struct {
	Title       string
	Description string
	Price       float64
}

// bindDestinationForm trims and validates the posted fields. On failure it
// flashes the error and reports false; the caller redirects back to the form.
func bindDestinationForm(c *gin.Context) (destinationForm, bool) {
	title := strings.TrimSpace(c.PostForm("titre"))
	description := strings.TrimSpace(c.PostForm("description"))
	rawPrice := strings.TrimSpace(c.PostForm("prix"))

	if title == "" || description == "" || rawPrice == "" {
		utils.Flash(c, utils.FlashError, "Tous les champs sont obligatoires")
		return destinationForm{}, false
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		utils.Flash(c, utils.FlashError, "Le prix doit être un nombre valide")
		return destinationForm{}, false
	}
	if price <= 0 {
		utils.Flash(c, utils.FlashError, "Le prix doit être un nombre positif")
		return destinationForm{}, false
	}

	return destinationForm{Title: title, Description: description, Price: price}, true
}

// GET /admin/destinations
func AdminDestinations(c *gin.Context) {
	var destinations []models.Destination
	config.DB.Order("titre").Find(&destinations)

	c.HTML(http.StatusOK, "admin_destinations.html", gin.H{
		"Destinations": destinations,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// GET /admin/destinations/ajouter
func AddDestinationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_destination_form.html", gin.H{
		"Flashes": utils.TakeFlashes(c),
	})
}

// POST /admin/destinations/ajouter
func AddDestination(c *gin.Context) {
	form, ok := bindDestinationForm(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/destinations/ajouter")
		return
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		if url, saved := utils.SaveUploadedImage(c, file, "destinations"); saved {
			imageURL = &url
		}
	}

	destination := models.Destination{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    imageURL,
	}
	if err := config.DB.Create(&destination).Error; err != nil {
		utils.Flash(c, utils.FlashError, "Impossible d'ajouter la destination")
		c.Redirect(http.StatusFound, "/admin/destinations/ajouter")
		return
	}

	utils.Flash(c, utils.FlashSuccess, "Destination ajoutée avec succès")
	c.Redirect(http.StatusFound, "/admin/destinations")
}

// GET /admin/destination/:id/modifier
func EditDestinationPage(c *gin.Context) {
	var destination models.Destination
	err := config.DB.First(&destination, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Flash(c, utils.FlashError, "Destination non trouvée")
		c.Redirect(http.StatusFound, "/admin/destinations")
		return
	}
	if err != nil {
		utils.Flash(c, utils.FlashError, "Impossible de charger la destination")
		c.Redirect(http.StatusFound, "/admin/destinations")
		return
	}

	c.HTML(http.StatusOK, "admin_destination_form.html", gin.H{
		"Destination": destination,
		"Flashes":     utils.TakeFlashes(c),
	})
}

// POST /admin/destination/:id/modifier
func EditDestination(c *gin.Context) {
	id := c.Param("id")

	var destination models.Destination
	err := config.DB.First(&destination, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Flash(c, utils.FlashError, "Destination non trouvée")
		c.Redirect(http.StatusFound, "/admin/destinations")
		return
	}

	form, ok := bindDestinationForm(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/destination/"+id+"/modifier")
		return
	}

	// A hidden field carries the current URL; a fresh upload replaces it.
	var imageURL *string
	if current := c.PostForm("image_url_actuelle"); current != "" {
		imageURL = &current
	}
	if file, err := c.FormFile("image"); err == nil {
		if url, saved := utils.SaveUploadedImage(c, file, "destinations"); saved {
			imageURL = &url
		}
	}

	updates := map[string]interface{}{
		"titre":       form.Title,
		"description": form.Description,
		"prix":        form.Price,
		"image_url":   imageURL,
	}
	if err := config.DB.Model(&models.Destination{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		utils.Flash(c, utils.FlashError, "Impossible de modifier la destination")
		c.Redirect(http.StatusFound, "/admin/destination/"+id+"/modifier")
		return
	}

	utils.Flash(c, utils.FlashSuccess, "Destination modifiée avec succès")
	c.Redirect(http.StatusFound, "/admin/destinations")
}

// GET /admin/destination/:id/supprimer
func DeleteDestination(c *gin.Context) {
	var destination models.Destination
	err := config.DB.First(&destination, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Flash(c, utils.FlashError, "Destination non trouvée")
		c.Redirect(http.StatusFound, "/admin/destinations")
		return
	}

	// Reservations reference destinations by free text, so the guard is a
	// substring match on the title. Kept as-is for compatibility with the
	// existing data.
	var referenced int64
	config.DB.Model(&models.Reservation{}).
		Where("destination LIKE ?", "%"+destination.Title+"%").
		Count(&referenced)
	if referenced > 0 {
		utils.Flash(c, utils.FlashError, "Impossible de supprimer cette destination car des réservations y sont associées")
		c.Redirect(http.StatusFound, "/admin/destinations")
		return
	}

	config.DB.Delete(&destination)

	utils.Flash(c, utils.FlashSuccess, "Destination supprimée avec succès")
	c.Redirect(http.StatusFound, "/admin/destinations")
}
