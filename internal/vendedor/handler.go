// internal/vendedor/handler.go
package vendedor

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /vendedores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	vendedores, err := h.Repo.Listar()
	if err != nil {
		http.Error(w, "Erro ao buscar vendedores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendedores)
}

// POST /vendedores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var v Vendedor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "Erro ao criar vendedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}
