package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Manuelc122/saber-pro-dashboard/controllers"
	"github.com/Manuelc122/saber-pro-dashboard/driver"
	"github.com/Manuelc122/saber-pro-dashboard/metrics"
	"github.com/Manuelc122/saber-pro-dashboard/web"
)

var db *sql.DB

// requestLogger tags every request with an id and logs method, path and
// duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start).String(),
		}).Info("request")
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment as-is")
	}

	db = driver.ConnectDB()
	defer db.Close()

	performanceController := controllers.PerformanceController{}
	genderController := controllers.GenderController{}
	departmentController := controllers.DepartmentController{}
	stratumController := controllers.StratumController{}
	qualityController := controllers.QualityController{}
	regressionController := controllers.RegressionController{}
	filtersController := controllers.FiltersController{}
	healthController := controllers.HealthController{}

	router := mux.NewRouter()
	router.Use(requestLogger)
	router.Use(metrics.Middleware)

	router.HandleFunc("/api/performance/yearly", performanceController.YearlyPerformance(db)).Methods("GET")
	router.HandleFunc("/api/performance/gender", genderController.GenderDistribution(db)).Methods("GET")
	router.HandleFunc("/api/performance/temporal", performanceController.TemporalPatterns(db)).Methods("GET")
	router.HandleFunc("/api/averages/department", departmentController.DepartmentAverages(db)).Methods("GET")
	router.HandleFunc("/api/averages/stratum", stratumController.StratumAverages(db)).Methods("GET")
	router.HandleFunc("/api/quality", qualityController.DataQuality(db)).Methods("GET")
	router.HandleFunc("/api/regression/features", regressionController.RegressionFeatures(db)).Methods("GET")
	router.HandleFunc("/api/filters", filtersController.Filters(db)).Methods("GET")
	router.HandleFunc("/healthz", healthController.Health(db)).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.PathPrefix("/").Handler(web.Handler()).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Infof("Server started on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
