package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// Circle struct mostly used for mocking tests
type Circle struct {
	DB databases.CircleDatabase
}

// CreateCircleHandler creates a new support circle with the creator as its
// sole initial member
func (c Circle) CreateCircleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCircleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		config.ErrorStatus("circle name and creatorId are required", http.StatusBadRequest, w, err)
		return
	}

	// private unless the caller says otherwise
	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	newCircle := models.SupportCircle{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Members:   []string{req.CreatorID},
		Messages:  []models.Message{},
		IsPrivate: isPrivate,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := c.DB.InsertOne(context.Background(), newCircle); err != nil {
		config.ErrorStatus("failed to create circle", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(newCircle)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// JoinCircleHandler adds a user to a circle's member list. Joining a circle
// the user is already a member of is a no-op.
func (c Circle) JoinCircleHandler(w http.ResponseWriter, r *http.Request) {
	c.updateMembership(w, r, "$addToSet")
}

// LeaveCircleHandler removes a user from a circle's member list. Removing a
// non-member is a no-op, not an error. The user's live chat subscriptions are
// left to the session registry.
func (c Circle) LeaveCircleHandler(w http.ResponseWriter, r *http.Request) {
	c.updateMembership(w, r, "$pull")
}

// updateMembership applies a single atomic member-list update so the list is
// either fully updated and persisted or not at all
func (c Circle) updateMembership(w http.ResponseWriter, r *http.Request, op string) {
	circleID := mux.Vars(r)["circle_id"]

	cID, err := primitive.ObjectIDFromHex(circleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req models.CircleMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		config.ErrorStatus("userId is required", http.StatusBadRequest, w, err)
		return
	}

	res, err := c.DB.UpdateOne(context.Background(),
		bson.M{"_id": cID},
		bson.M{op: bson.M{"members": req.UserID}},
	)
	if err != nil {
		config.ErrorStatus("failed to update circle members", http.StatusInternalServerError, w, err)
		return
	}
	if res.MatchedCount == 0 {
		config.ErrorStatus("circle not found", http.StatusNotFound, w, errors.New("no circle matched the given id"))
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get circle by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CirclesHandler returns a summary view of every circle for discovery
func (c Circle) CirclesHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := c.DB.Find(context.Background(), bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get circles", http.StatusInternalServerError, w, err)
		return
	}

	summaries := lo.Map(dbResp, func(circle models.SupportCircle, _ int) models.CircleSummary {
		return models.CircleSummary{
			ID:          circle.ID.Hex(),
			Name:        circle.Name,
			MemberCount: len(circle.Members),
			IsPrivate:   circle.IsPrivate,
		}
	})

	b, err := json.Marshal(summaries)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CircleMessagesHandler returns the persisted message history for a circle
func (c Circle) CircleMessagesHandler(w http.ResponseWriter, r *http.Request) {
	circleID := mux.Vars(r)["circle_id"]

	cID, err := primitive.ObjectIDFromHex(circleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("circle not found", http.StatusNotFound, w, err)
		return
	}

	messages := dbResp.Messages
	if messages == nil {
		messages = []models.Message{}
	}

	b, err := json.Marshal(messages)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
