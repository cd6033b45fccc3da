package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// GET /admin/parametres
func SettingsPage(c *gin.Context) {
	var images []models.HomepageImage
	config.DB.Order("ordre").Find(&images)

	c.HTML(http.StatusOK, "admin_parametres.html", gin.H{
		"Presentation": siteText(models.TextPresentation),
		"Contact":      siteText(models.TextContact),
		"Footer":       siteText(models.TextFooter),
		"Images":       images,
		"Flashes":      utils.TakeFlashes(c),
	})
}

// POST /admin/parametres
//
// Updates the three site texts and appends any uploaded homepage images in
// a single submission. Invalid files are skipped without aborting the rest.
func UpdateSettings(c *gin.Context) {
	texts := map[string]string{
		models.TextPresentation: strings.TrimSpace(c.PostForm("presentation")),
		models.TextContact:      strings.TrimSpace(c.PostForm("contact")),
		models.TextFooter:       strings.TrimSpace(c.PostForm("footer")),
	}
	for identifier, content := range texts {
		config.DB.Model(&models.SiteText{}).
			Where("identifiant = ?", identifier).
			Update("contenu", content)
	}

	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images_accueil"] {
			url, saved := utils.SaveUploadedImage(c, file, "accueil")
			if !saved {
				continue
			}
			config.DB.Create(&models.HomepageImage{URL: url})
		}
	}

	utils.Flash(c, utils.FlashSuccess, "Paramètres mis à jour avec succès")
	c.Redirect(http.StatusFound, "/admin/parametres")
}

// GET /admin/image/:id/supprimer
func DeleteHomepageImage(c *gin.Context) {
	config.DB.Where("id = ?", c.Param("id")).Delete(&models.HomepageImage{})

	utils.Flash(c, utils.FlashSuccess, "Image supprimée avec succès")
	c.Redirect(http.StatusFound, "/admin/parametres")
}
