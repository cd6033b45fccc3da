package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tmarchal/agence-voyage/config"
	"github.com/tmarchal/agence-voyage/middleware"
	"github.com/tmarchal/agence-voyage/routes"
	"github.com/tmarchal/agence-voyage/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("missing required env var: SESSION_SECRET")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("missing required env var: JWT_SECRET")
	}

	config.ConnectDB()

	for _, subdir := range []string{"destinations", "accueil"} {
		if err := os.MkdirAll(filepath.Join(utils.UploadDir(), subdir), 0755); err != nil {
			log.Fatalf("failed to create upload dir: %v", err)
		}
	}

	r := gin.Default()

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(origins, ","),
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.BodySizeLimit())
	r.Use(sessions.Sessions("agence_session", cookie.NewStore([]byte(sessionSecret))))

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	r.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
