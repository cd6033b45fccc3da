package controllers_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
)

func TestUpdateSettingsTexts(t *testing.T) {
	r := newTestServer(t)
	ck := loginAsAdmin(t, r)

	w := postMultipart(t, r, "/admin/parametres",
		map[string]string{
			"presentation": "Nouvelle présentation",
			"contact":      "Nouveau contact",
			"footer":       "Nouveau pied de page",
		}, nil, ck)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/parametres", w.Header().Get("Location"))

	var txt models.SiteText
	require.NoError(t, config.DB.Where("identifiant = ?", models.TextPresentation).First(&txt).Error)
	assert.Equal(t, "Nouvelle présentation", txt.Content)

	// The public home page picks up the edited text.
	home := doGet(r, "/")
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Nouvelle présentation")
	assert.Contains(t, home.Body.String(), "Nouveau pied de page")
}

func TestUpdateSettingsStoresHomepageImages(t *testing.T) {
	r := newTestServer(t)
	ck := loginAsAdmin(t, r)

	w := postMultipart(t, r, "/admin/parametres",
		map[string]string{
			"presentation": "P",
			"contact":      "C",
			"footer":       "F",
		},
		map[string][2]string{
			"images_accueil": {"plage.png", "fake png bytes"},
		}, ck)

	require.Equal(t, http.StatusFound, w.Code)

	var images []models.HomepageImage
	config.DB.Find(&images)
	require.Len(t, images, 1)
	assert.Equal(t, "uploads/accueil/plage.png", images[0].URL)
	assert.Equal(t, 0, images[0].Order)

	saved := filepath.Join(os.Getenv("UPLOAD_DIR"), "accueil", "plage.png")
	_, err := os.Stat(saved)
	assert.NoError(t, err)
}

func TestDeleteHomepageImage(t *testing.T) {
	r := newTestServer(t)
	ck := loginAsAdmin(t, r)

	image := models.HomepageImage{URL: "uploads/accueil/plage.png"}
	require.NoError(t, config.DB.Create(&image).Error)

	w := doGet(r, fmt.Sprintf("/admin/image/%d/supprimer", image.ID), ck)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/parametres", w.Header().Get("Location"))

	var count int64
	config.DB.Model(&models.HomepageImage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
