package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/models"
)

// localResources is a static listing of local therapists and wellness events
var localResources = []models.Resource{
	{ID: 1, Name: "Downtown Therapist Clinic", Address: "123 Main St", Lat: 40.7128, Lng: -74.0060},
	{ID: 2, Name: "City Wellness Group", Address: "456 Elm St", Lat: 40.7138, Lng: -74.0020},
	{ID: 3, Name: "Weekly Meditation Meetup", Address: "789 Oak Ave", Lat: 40.7100, Lng: -74.0100},
}

// Resource struct mostly used for mocking tests
type Resource struct{}

// ResourcesHandler returns the static resource listing
func (res Resource) ResourcesHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(localResources)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
