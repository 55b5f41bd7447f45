package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soiemaison/storefront-backend/models"
	"github.com/soiemaison/storefront-backend/utils"
)

// FeedResponse represents the paginated community feed payload
type FeedResponse struct {
	Posts       []models.CommunityPost `json:"posts"`
	Total       int64                  `json:"total"`
	CurrentPage int                    `json:"current_page"`
	TotalPages  int                    `json:"total_pages"`
}

// CommunityHandler backs the community feed: listing shared looks and
// creating posts whose images land in S3.
type CommunityHandler struct {
	Posts *mongo.Collection
	Log   *logrus.Logger
}

func NewCommunityHandler(posts *mongo.Collection, log *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{Posts: posts, Log: log}
}

// PostsEndpoint dispatches GET (list) and POST (create) for /api/community/posts.
func (h *CommunityHandler) PostsEndpoint(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "community")

	if h.Posts == nil || !utils.S3Enabled() {
		utils.RespondError(w, log, "community storage not configured", http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		utils.RespondError(w, log, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CommunityHandler) list(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "community")

	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	filter := bson.M{}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filter["tags"] = tag
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	total, err := h.Posts.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondError(w, log, "failed to fetch posts", http.StatusInternalServerError)
		return
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := h.Posts.Find(ctx, filter, findOptions)
	if err != nil {
		utils.RespondError(w, log, "failed to fetch posts", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var posts []models.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		utils.RespondError(w, log, "failed to decode posts", http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.CommunityPost{}
	}

	for i := range posts {
		posts[i].Images = utils.PresignImageURLs(r.Context(), posts[i].Images)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	utils.RespondJSON(w, http.StatusOK, FeedResponse{
		Posts:       posts,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

func (h *CommunityHandler) create(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "community")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, log, "Error parsing form data", http.StatusBadRequest)
		return
	}

	author := r.FormValue("author")
	content := r.FormValue("content")
	if author == "" || content == "" {
		utils.RespondError(w, log, "author and content are required", http.StatusBadRequest)
		return
	}

	var tags []string
	for _, t := range strings.Split(r.FormValue("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	var imageKeys []string
	for _, file := range r.MultipartForm.File["images"] {
		f, err := file.Open()
		if err != nil {
			utils.RespondError(w, log, fmt.Sprintf("Error opening file %s", file.Filename), http.StatusInternalServerError)
			return
		}
		defer f.Close()

		ext := filepath.Ext(file.Filename)
		objectKey := fmt.Sprintf("community/%s%s", uuid.New().String(), ext)

		key, err := utils.UploadFileToS3(r.Context(), f, objectKey, file.Header.Get("Content-Type"))
		if err != nil {
			utils.RespondError(w, log, fmt.Sprintf("Error uploading file %s", file.Filename), http.StatusInternalServerError)
			return
		}
		imageKeys = append(imageKeys, key)
	}

	post := models.CommunityPost{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Avatar:    r.FormValue("avatar"),
		Content:   content,
		Images:    imageKeys,
		Tags:      tags,
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.Posts.InsertOne(ctx, post); err != nil {
		utils.RespondError(w, log, "Error saving post", http.StatusInternalServerError)
		return
	}

	post.Images = utils.PresignImageURLs(r.Context(), post.Images)
	utils.RespondJSON(w, http.StatusCreated, post)
}
