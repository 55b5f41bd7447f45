package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/soiemaison/storefront-backend/scrape"
	"github.com/soiemaison/storefront-backend/utils"
)

// GarmentHandler resolves a product-page URL into the page's primary image so
// the try-on page can use it as the garment source.
type GarmentHandler struct {
	Client *http.Client
	Log    *logrus.Logger
}

func NewGarmentHandler(client *http.Client, log *logrus.Logger) *GarmentHandler {
	return &GarmentHandler{Client: client, Log: log}
}

// Resolve handles /api/garment-image. Accepts the page URL as a query
// parameter or a JSON body.
func (h *GarmentHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "garment-image")

	if r.Method != http.MethodPost {
		utils.RespondError(w, log, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			pageURL = req.URL
		}
	}

	if pageURL == "" {
		utils.RespondError(w, log, "please provide a 'url' query parameter or JSON body", http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(pageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		utils.RespondError(w, log, "invalid page url", http.StatusBadRequest)
		return
	}

	resolved, err := scrape.ResolveShortenedURL(h.Client, pageURL)
	if err != nil {
		resolved = pageURL
	}

	doc, err := scrape.FetchDocument(h.Client, resolved)
	if err != nil {
		utils.RespondError(w, log, fmt.Sprintf("cannot fetch product page: %v", err), http.StatusBadGateway)
		return
	}

	imageURL, err := scrape.ExtractPrimaryImage(doc, resolved)
	if err != nil {
		utils.RespondError(w, log, "no product image found on page", http.StatusBadGateway)
		return
	}

	log.WithField("image_url", imageURL).Info("resolved garment image")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
