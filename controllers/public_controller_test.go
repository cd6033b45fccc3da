package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/models"
)

func TestHomeShowsSeededPresentation(t *testing.T) {
	r := newTestServer(t)

	w := doGet(r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bienvenue sur notre agence de voyage")
}

func TestSubmitReservation(t *testing.T) {
	r := newTestServer(t)

	form := url.Values{
		"nom":         {"Jean Dupont"},
		"email":       {"jean@example.com"},
		"telephone":   {"0612345678"},
		"destination": {"Paris, France"},
		"classe":      {"economique"},
		"date":        {"2026-09-15"},
	}
	w := postForm(r, "/reservation", form)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/reservation", w.Header().Get("Location"))

	var reservation models.Reservation
	require.NoError(t, config.DB.First(&reservation).Error)
	assert.Equal(t, "Jean Dupont", reservation.Name)
	assert.Equal(t, models.ReservationPending, reservation.Status)
}

func TestSubmitReservationBlankFieldRejected(t *testing.T) {
	r := newTestServer(t)

	form := url.Values{
		"nom":         {"Jean Dupont"},
		"email":       {"   "}, // whitespace only
		"telephone":   {"0612345678"},
		"destination": {"Paris, France"},
		"classe":      {"economique"},
		"date":        {"2026-09-15"},
	}
	w := postForm(r, "/reservation", form)

	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	config.DB.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitCommentLengthBoundary(t *testing.T) {
	r := newTestServer(t)

	tooLong := strings.Repeat("a", 501)
	w := postForm(r, "/commentaires", url.Values{"nom": {"Luc"}, "message": {tooLong}})
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	config.DB.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)

	exact := strings.Repeat("a", 500)
	w = postForm(r, "/commentaires", url.Values{"nom": {"Luc"}, "message": {exact}})
	require.Equal(t, http.StatusFound, w.Code)

	config.DB.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var comment models.Comment
	config.DB.First(&comment)
	assert.Equal(t, 0, comment.Approved)
}

func TestPublicCommentsShowOnlyApproved(t *testing.T) {
	r := newTestServer(t)

	config.DB.Create(&models.Comment{Name: "Alice", Message: "Voyage magnifique", Approved: 1})
	config.DB.Create(&models.Comment{Name: "Bob", Message: "En attente de moderation", Approved: 0})

	w := doGet(r, "/commentaires")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Voyage magnifique")
	assert.NotContains(t, body, "En attente de moderation")
}

func TestPricesPageOrderedByPrice(t *testing.T) {
	r := newTestServer(t)

	w := doGet(r, "/tarifs")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// Cheapest seeded destination must appear before the most expensive one.
	assert.Less(t, strings.Index(body, "Paris, France"), strings.Index(body, "Tokyo, Japon"))
}
