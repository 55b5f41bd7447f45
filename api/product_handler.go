package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soiemaison/storefront-backend/models"
	"github.com/soiemaison/storefront-backend/utils"
)

// ProductsResponse represents the catalog listing payload
type ProductsResponse struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
}

// ProductHandler serves the silk catalog. With a nil collection it falls back
// to the embedded default catalog, so the storefront works without a database.
type ProductHandler struct {
	Collection *mongo.Collection
	Log        *logrus.Logger
}

func NewProductHandler(coll *mongo.Collection, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{Collection: coll, Log: log}
}

// List handles GET /api/products with optional id, category and q filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "products")

	if r.Method != http.MethodGet {
		utils.RespondError(w, log, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if idStr := r.URL.Query().Get("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			utils.RespondError(w, log, "invalid product id", http.StatusBadRequest)
			return
		}
		h.byID(w, r, id)
		return
	}

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	h.list(w, r, category, query)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "products")

	if r.Method != http.MethodGet {
		utils.RespondError(w, log, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, log, "invalid product id", http.StatusBadRequest)
		return
	}
	h.byID(w, r, id)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, category, query string) {
	log := h.Log.WithField("api", "products")

	products, err := h.find(r.Context(), category, query)
	if err != nil {
		utils.RespondError(w, log, "failed to fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondJSON(w, http.StatusOK, ProductsResponse{
		Products:   products,
		Categories: models.Categories,
		Total:      len(products),
	})
}

func (h *ProductHandler) byID(w http.ResponseWriter, r *http.Request, id int) {
	log := h.Log.WithField("api", "products")

	if h.Collection == nil {
		for _, p := range models.DefaultCatalog {
			if p.ID == id {
				utils.RespondJSON(w, http.StatusOK, p)
				return
			}
		}
		utils.RespondError(w, log, "product not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := h.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		utils.RespondError(w, log, "product not found", http.StatusNotFound)
		return
	}
	utils.RespondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) find(ctx context.Context, category, query string) ([]models.Product, error) {
	if h.Collection == nil {
		return filterCatalog(models.DefaultCatalog, category, query), nil
	}

	filter := bson.M{}
	if category != "" && category != "All" {
		filter["category"] = category
	}
	if query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}},
			bson.M{"category": bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}},
		}
	}

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := h.Collection.Find(cctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(cctx)

	var products []models.Product
	if err := cursor.All(cctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// filterCatalog mirrors the client's browse semantics: category tab plus a
// case-insensitive search over name and category.
func filterCatalog(catalog []models.Product, category, query string) []models.Product {
	query = strings.ToLower(query)
	var out []models.Product
	for _, p := range catalog {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
