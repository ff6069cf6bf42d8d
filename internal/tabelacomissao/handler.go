// internal/tabelacomissao/handler.go
package tabelacomissao

import (
	"encoding/json"
	"net/http"
)

/* ============================== Handler & DTOs ============================== */

type Handler struct {
	Repo  *Repository
	Cache *CacheConfiguracao
}

func NewHandler(repo *Repository, cache *CacheConfiguracao) *Handler {
	return &Handler{Repo: repo, Cache: cache}
}

// DTO usado no PUT /configuracao-comissao. Campos ausentes não são alterados.
type AtualizarConfiguracaoDTO struct {
	MetaVendas     *int      `json:"metaVendas"`
	MrrTier1       *float64  `json:"mrrTier1"`
	MrrTier2       *float64  `json:"mrrTier2"`
	MrrTier3       *float64  `json:"mrrTier3"`
	SetupTier1     *float64  `json:"setupTier1"`
	SetupTier2     *float64  `json:"setupTier2"`
	SetupTier3     *float64  `json:"setupTier3"`
	MrrRecorrencia []float64 `json:"mrrRecorrencia"`
}

/* ============================== Endpoints ============================== */

// GET /configuracao-comissao
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	cfg := h.Cache.Obter()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

// PUT /configuracao-comissao
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var in AtualizarConfiguracaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	campos := map[string]interface{}{}
	if in.MetaVendas != nil {
		campos["meta_vendas"] = *in.MetaVendas
	}
	if in.MrrTier1 != nil {
		campos["mrr_tier1"] = *in.MrrTier1
	}
	if in.MrrTier2 != nil {
		campos["mrr_tier2"] = *in.MrrTier2
	}
	if in.MrrTier3 != nil {
		campos["mrr_tier3"] = *in.MrrTier3
	}
	if in.SetupTier1 != nil {
		campos["setup_tier1"] = *in.SetupTier1
	}
	if in.SetupTier2 != nil {
		campos["setup_tier2"] = *in.SetupTier2
	}
	if in.SetupTier3 != nil {
		campos["setup_tier3"] = *in.SetupTier3
	}
	if in.MrrRecorrencia != nil {
		recorrencia, err := json.Marshal(in.MrrRecorrencia)
		if err != nil {
			http.Error(w, "Recorrência inválida", http.StatusBadRequest)
			return
		}
		campos["mrr_recorrencia"] = string(recorrencia)
	}

	cfg, err := h.Repo.AtualizarParcial(campos)
	if err != nil {
		http.Error(w, "Erro ao atualizar configuração de comissões", http.StatusInternalServerError)
		return
	}

	// Força recarga para que as próximas leituras vejam a nova configuração.
	h.Cache.Invalidar()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}
