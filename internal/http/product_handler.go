package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/service"
)

type ProductHandler struct {
	products ProductService
}

func NewProductHandler(products ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		log.Printf("product list failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "product id is required")
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "No product found")
			return
		}
		log.Printf("product get failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

// POST /api/products (admin)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil || identity.Role != domain.RoleAdmin {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "Missing request body")
		return
	}

	if product.Name == "" || product.Description == "" || product.ImageURL == "" || len(product.Variants) == 0 {
		respondError(w, http.StatusBadRequest, "Missing request body")
		return
	}
	for _, variant := range product.Variants {
		if !variant.Valid() {
			respondError(w, http.StatusBadRequest, "Missing request body")
			return
		}
	}

	created, err := h.products.Create(r.Context(), &product)
	if err != nil {
		log.Printf("product create failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"product": created})
}
