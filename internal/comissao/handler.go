// internal/comissao/handler.go
package comissao

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/vendedor"
	"github.com/gorilla/mux"
)

/* ============================== Handler ============================== */

type Handler struct {
	Calculadora *Calculadora
	Clientes    *cliente.Repository
	Vendedores  *vendedor.Repository

	// Agora é substituível em teste.
	Agora func() time.Time
}

func NewHandler(calc *Calculadora, clientes *cliente.Repository, vendedores *vendedor.Repository) *Handler {
	return &Handler{
		Calculadora: calc,
		Clientes:    clientes,
		Vendedores:  vendedores,
		Agora:       time.Now,
	}
}

// mesDeReferencia lê ?mes=YYYY-MM, caindo no mês corrente quando ausente.
func (h *Handler) mesDeReferencia(r *http.Request) (string, error) {
	mes := r.URL.Query().Get("mes")
	if mes == "" {
		return ciclo.MesDeData(h.Agora()), nil
	}
	if !ciclo.MesValido(mes) {
		return "", fmt.Errorf("mês de referência inválido: %q", mes)
	}
	return mes, nil
}

// tiersPorVendedor calcula o tier de cada vendedor (por nome) a partir das
// vendas do mês de referência.
func (h *Handler) tiersPorVendedor(mes string) (map[string]gamificacao.InfoTier, map[string]int, error) {
	cfg := h.Calculadora.Config.Obter()
	vendas, err := h.Clientes.ContarVendasPorVendedor(mes)
	if err != nil {
		return nil, nil, err
	}

	tiers := make(map[string]gamificacao.InfoTier, len(vendas))
	for nome, qtd := range vendas {
		tiers[nome] = gamificacao.TierParaVendas(qtd, cfg)
	}
	return tiers, vendas, nil
}

func (h *Handler) tierDoVendedor(nome string, tiers map[string]gamificacao.InfoTier) gamificacao.InfoTier {
	if tier, ok := tiers[nome]; ok {
		return tier
	}
	// Vendedor sem vendas no mês: bronze.
	return gamificacao.TierParaVendas(0, h.Calculadora.Config.Obter())
}

/* ============================== Endpoints ============================== */

// GET /comissoes?mes=YYYY-MM
func (h *Handler) ListarComissoes(w http.ResponseWriter, r *http.Request) {
	mes, err := h.mesDeReferencia(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clientes, err := h.Clientes.ListarParaComissao(mes)
	if err != nil {
		http.Error(w, "Erro ao buscar clientes", http.StatusInternalServerError)
		return
	}

	tiers, _, err := h.tiersPorVendedor(mes)
	if err != nil {
		http.Error(w, "Erro ao calcular tiers dos vendedores", http.StatusInternalServerError)
		return
	}

	linhas := make([]ComissaoClienteDTO, 0, len(clientes))
	for i := range clientes {
		c := &clientes[i]
		tier := h.tierDoVendedor(c.Vendedor, tiers)
		linha := h.Calculadora.Calcular(c, mes, tier)
		sellerID := strconv.FormatUint(uint64(h.Vendedores.IDParaNome(c.Vendedor)), 10)
		linhas = append(linhas, montarDTO(c, sellerID, mes, linha))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(linhas)
}

// GET /vendedores/{id}/comissoes?mes=YYYY-MM
func (h *Handler) ListarComissoesDoVendedor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do vendedor inválido", http.StatusBadRequest)
		return
	}

	mes, err := h.mesDeReferencia(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clientes, err := h.Clientes.ListarParaComissao(mes)
	if err != nil {
		http.Error(w, "Erro ao buscar clientes", http.StatusInternalServerError)
		return
	}

	tiers, _, err := h.tiersPorVendedor(mes)
	if err != nil {
		http.Error(w, "Erro ao calcular tiers dos vendedores", http.StatusInternalServerError)
		return
	}

	linhas := make([]ComissaoClienteDTO, 0)
	for i := range clientes {
		c := &clientes[i]
		if h.Vendedores.IDParaNome(c.Vendedor) != uint(id) {
			continue
		}
		tier := h.tierDoVendedor(c.Vendedor, tiers)
		linha := h.Calculadora.Calcular(c, mes, tier)
		linhas = append(linhas, montarDTO(c, strconv.Itoa(id), mes, linha))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(linhas)
}

// GET /vendedores/{id}/tier?mes=YYYY-MM
func (h *Handler) BuscarTierDoVendedor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do vendedor inválido", http.StatusBadRequest)
		return
	}

	mes, err := h.mesDeReferencia(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendas, err := h.Clientes.ContarVendasPorVendedor(mes)
	if err != nil {
		http.Error(w, "Erro ao buscar vendas do mês", http.StatusInternalServerError)
		return
	}

	total := 0
	for nome, qtd := range vendas {
		if h.Vendedores.IDParaNome(nome) == uint(id) {
			total += qtd
		}
	}

	cfg := h.Calculadora.Config.Obter()
	tier := gamificacao.TierParaVendas(total, cfg)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(TierDTO{
		Tier:         tier.Tier,
		MrrPercent:   tier.PercentualMrr,
		SetupPercent: tier.PercentualSetup,
		SalesCount:   total,
	})
}
