package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

func commentListURL(c *gin.Context) string {
	if statut := c.Query("statut"); statut != "" {
		return "/admin/commentaires?statut=" + statut
	}
	return "/admin/commentaires"
}

// GET /admin/commentaires?statut=tous|en_attente|approuves
func AdminComments(c *gin.Context) {
	statut := c.DefaultQuery("statut", "tous")

	var comments []models.Comment
	q := config.DB.Order("date DESC")
	switch statut {
	case "tous":
	case "en_attente":
		q = q.Where("approuve = ?", 0)
	default: // approuves
		q = q.Where("approuve = ?", 1)
	}
	q.Find(&comments)

	c.HTML(http.StatusOK, "admin_commentaires.html", gin.H{
		"Comments": comments,
		"Statut":   statut,
		"Flashes":  utils.TakeFlashes(c),
	})
}

// GET /admin/commentaire/:id/approuver
func ApproveComment(c *gin.Context) {
	config.DB.Model(&models.Comment{}).
		Where("id = ?", c.Param("id")).
		Update("approuve", 1)

	utils.Flash(c, utils.FlashSuccess, "Commentaire approuvé avec succès")
	c.Redirect(http.StatusFound, commentListURL(c))
}

// GET /admin/commentaire/:id/supprimer
func DeleteComment(c *gin.Context) {
	config.DB.Where("id = ?", c.Param("id")).Delete(&models.Comment{})

	utils.Flash(c, utils.FlashSuccess, "Commentaire supprimé avec succès")
	c.Redirect(http.StatusFound, commentListURL(c))
}
