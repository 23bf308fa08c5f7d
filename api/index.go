package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/radityaputra/shift-roster-api/pkg/database"
	"github.com/radityaputra/shift-roster-api/pkg/handlers"
	"github.com/radityaputra/shift-roster-api/pkg/logging"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger := logging.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	db := database.InitDB()
	h := &handlers.Handler{DB: db, Log: logger}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	handlers.Register(r, h)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
