package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/middleware"
	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"
)

// GET /admin/login
func LoginPage(c *gin.Context) {
	if middleware.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flashes": utils.TakeFlashes(c),
	})
}

// POST /admin/login
func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error

	// Same generic message whether the username or the password was wrong.
	if err != nil || !utils.CheckPassword(user.PasswordHash, password) {
		utils.Flash(c, utils.FlashError, "Identifiants incorrects")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	token, err := utils.GenerateAdminToken(user.Username)
	if err != nil {
		utils.Flash(c, utils.FlashError, "Connexion impossible, réessayez plus tard")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	c.SetCookie(middleware.AdminCookie, token, 24*3600, "/", "", false, true)
	utils.Flash(c, utils.FlashSuccess, "Connexion réussie !")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// GET /admin/logout
func Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	utils.Flash(c, utils.FlashInfo, "Vous avez été déconnecté")
	c.Redirect(http.StatusFound, "/admin/login")
}
