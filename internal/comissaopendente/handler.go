// internal/comissaopendente/handler.go
package comissaopendente

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type Handler struct {
	Service *Service
	Repo    *Repository

	// Agora é substituível em teste.
	Agora func() time.Time
}

func NewHandler(service *Service, repo *Repository) *Handler {
	return &Handler{Service: service, Repo: repo, Agora: time.Now}
}

/* =========================================================
   SNAPSHOT DE INADIMPLÊNCIA
   ========================================================= */

// ProcessarSnapshot recebe o lote semanal de clientes inadimplentes e cria
// uma comissão bloqueada por parcela atrasada.
// POST /inadimplencia/snapshot
func (h *Handler) ProcessarSnapshot(w http.ResponseWriter, r *http.Request) {
	var clientes []ClienteInadimplente
	if err := json.NewDecoder(r.Body).Decode(&clientes); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}
	if len(clientes) == 0 {
		http.Error(w, "Lista de clientes vazia", http.StatusBadRequest)
		return
	}

	resultados := h.Service.ProcessarSnapshot(clientes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"processados": len(resultados),
		"resultados":  resultados,
	})
}

/* =========================================================
   CONSULTAS
   ========================================================= */

// Listar devolve as comissões pendentes, com filtros opcionais por vendedor
// e status.
// GET /comissoes-pendentes?vendedorId=&status=&limit=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var vendedorID *uint
	if raw := r.URL.Query().Get("vendedorId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "vendedorId inválido", http.StatusBadRequest)
			return
		}
		v := uint(id)
		vendedorID = &v
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		if raw != StatusBloqueada && raw != StatusPaga && raw != StatusPerdida {
			http.Error(w, "Status desconhecido", http.StatusBadRequest)
			return
		}
		status = &raw
	}

	limit := 200
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit inválido", http.StatusBadRequest)
			return
		}
		limit = n
	}

	registros, err := h.Repo.Listar(vendedorID, status, limit)
	if err != nil {
		http.Error(w, "Erro ao buscar comissões pendentes", http.StatusInternalServerError)
		return
	}

	agora := h.Agora()
	dtos := make([]ComissaoPendenteDTO, 0, len(registros))
	for i := range registros {
		dtos = append(dtos, montarDTO(&registros[i], agora))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos)
}

// ListarLiberadas devolve as comissões já pagas, da liberação mais recente
// para a mais antiga.
// GET /comissoes-pendentes/liberadas?vendedorId=&limit=
func (h *Handler) ListarLiberadas(w http.ResponseWriter, r *http.Request) {
	var vendedorID *uint
	if raw := r.URL.Query().Get("vendedorId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "vendedorId inválido", http.StatusBadRequest)
			return
		}
		v := uint(id)
		vendedorID = &v
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit inválido", http.StatusBadRequest)
			return
		}
		limit = n
	}

	registros, err := h.Repo.ListarLiberadas(vendedorID, limit)
	if err != nil {
		http.Error(w, "Erro ao buscar comissões liberadas", http.StatusInternalServerError)
		return
	}

	agora := h.Agora()
	dtos := make([]ComissaoPendenteDTO, 0, len(registros))
	for i := range registros {
		dtos = append(dtos, montarDTO(&registros[i], agora))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos)
}

// Resumo devolve os totais por vendedor (bloqueado, pago no mês, perdido).
// GET /comissoes-pendentes/resumo?vendedorId=
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	var vendedorID *uint
	if raw := r.URL.Query().Get("vendedorId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "vendedorId inválido", http.StatusBadRequest)
			return
		}
		v := uint(id)
		vendedorID = &v
	}

	resumos, err := h.Repo.Resumo(vendedorID, h.Agora())
	if err != nil {
		http.Error(w, "Erro ao montar resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumos)
}

/* =========================================================
   TRANSIÇÕES DE ESTADO
   ========================================================= */

// Regularizar libera por FIFO as comissões bloqueadas de um cliente que
// quitou parcelas.
// POST /comissoes-pendentes/regularizar
func (h *Handler) Regularizar(w http.ResponseWriter, r *http.Request) {
	var body RegularizarDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}
	if body.CNPJ == "" {
		http.Error(w, "CNPJ é obrigatório", http.StatusBadRequest)
		return
	}
	if body.ParcelasPagas <= 0 {
		http.Error(w, "parcelasPagas deve ser maior que zero", http.StatusBadRequest)
		return
	}

	liberadas, err := h.Service.RegularizarCliente(body.CNPJ, body.ParcelasPagas)
	if err != nil {
		http.Error(w, "Erro ao liberar comissões", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"liberadas": liberadas})
}

// MarcarPerdida marca como perdidas todas as comissões bloqueadas do cliente.
// POST /comissoes-pendentes/perdida
func (h *Handler) MarcarPerdida(w http.ResponseWriter, r *http.Request) {
	var body PerdidaDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}
	if body.CNPJ == "" {
		http.Error(w, "CNPJ é obrigatório", http.StatusBadRequest)
		return
	}

	perdidas, err := h.Service.MarcarPerdida(body.CNPJ, body.Motivo)
	if err != nil {
		http.Error(w, "Erro ao marcar comissões como perdidas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"perdidas": perdidas})
}
