package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/api"
	"github.com/mindspacehq/mindspace-api/api/scheduler"
	"github.com/mindspacehq/mindspace-api/chat"
	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	c := Circle{DB: databases.NewCircleDatabase(a.dbHelper)}
	mood := Mood{DB: databases.NewMoodDatabase(a.dbHelper)}
	creative := Creative{DB: databases.NewCreativeDatabase(a.dbHelper)}
	roadmap := Roadmap{DB: databases.NewRoadmapStepDatabase(a.dbHelper), UDB: databases.NewUserDatabase(a.dbHelper)}
	report := Report{DB: databases.NewMoodDatabase(a.dbHelper), IDB: databases.NewInsightDatabase(a.dbHelper)}
	resource := Resource{}

	// realtime chat: one hub and broadcaster per server, injected into the
	// websocket handler rather than accessed as package globals
	hub := chat.NewHub()
	circleDB := databases.NewCircleDatabase(a.dbHelper)
	broadcaster := chat.NewBroadcaster(hub, &userNameResolver{DB: databases.NewUserDatabase(a.dbHelper)}, circleDB, chat.BroadcasterConfig{
		Persist: a.Config.PersistMessages,
	})
	ws := Chat{Hub: hub, Broadcaster: broadcaster}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.HandleFunc("/ws/chat", ws.HandleChatWebSocket)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UserHandler))).Methods("GET")

	apiCreate.Handle("/circles", api.Middleware(http.HandlerFunc(c.CreateCircleHandler))).Methods("POST")
	apiCreate.Handle("/circles", api.Middleware(http.HandlerFunc(c.CirclesHandler))).Methods("GET")
	apiCreate.Handle("/circles/{circle_id}/join", api.Middleware(http.HandlerFunc(c.JoinCircleHandler))).Methods("POST")
	apiCreate.Handle("/circles/{circle_id}/leave", api.Middleware(http.HandlerFunc(c.LeaveCircleHandler))).Methods("POST")
	apiCreate.Handle("/circles/{circle_id}/messages", api.Middleware(http.HandlerFunc(c.CircleMessagesHandler))).Methods("GET")

	apiCreate.Handle("/moods", api.Middleware(http.HandlerFunc(mood.CreateMoodHandler))).Methods("POST")
	apiCreate.Handle("/moods/user/{user_id}", api.Middleware(http.HandlerFunc(mood.MoodsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/moods/user/{user_id}", api.Middleware(http.HandlerFunc(mood.DeleteMoodsByUserIDHandler))).Methods("DELETE")

	apiCreate.Handle("/reports/{user_id}", api.Middleware(http.HandlerFunc(report.InsightReportHandler))).Methods("GET")

	apiCreate.Handle("/creative", api.Middleware(http.HandlerFunc(creative.CreateCreativeContentHandler))).Methods("POST")
	apiCreate.Handle("/creative/prompt", api.Middleware(http.HandlerFunc(creative.PromptHandler))).Methods("GET")
	apiCreate.Handle("/creative/user/{user_id}", api.Middleware(http.HandlerFunc(creative.CreativeContentByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/roadmap/{user_id}", api.Middleware(http.HandlerFunc(roadmap.RoadmapHandler))).Methods("GET")
	apiCreate.Handle("/roadmap/{user_id}/steps/{step_id}", api.Middleware(http.HandlerFunc(roadmap.UpdateRoadmapStepHandler))).Methods("PUT")

	apiCreate.Handle("/resources", api.Middleware(http.HandlerFunc(resource.ResourcesHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("mindspace-api has connected to the database")

	// seed the fixed self-care roadmap if the collection is empty
	if err := SeedRoadmapSteps(context.Background(), databases.NewRoadmapStepDatabase(a.dbHelper)); err != nil {
		zap.S().With(err).Error("failed to seed roadmap steps")
		return err
	}

	// nightly mood insight snapshots
	a.Scheduler = scheduler.New(
		databases.NewMoodDatabase(a.dbHelper),
		databases.NewInsightDatabase(a.dbHelper),
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
