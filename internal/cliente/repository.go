// internal/cliente/repository.go
package cliente

import (
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"gorm.io/gorm"
)

// Repository encapsula as consultas de leitura sobre clientes_atual.
type Repository struct {
	DB *gorm.DB

	// Agora é substituível em teste.
	Agora func() time.Time
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db, Agora: time.Now}
}

// intervaloDoMes devolve [início, início do mês seguinte) para um YYYY-MM.
func intervaloDoMes(mes string) (time.Time, time.Time, bool) {
	inicio, err := time.Parse("2006-01", mes)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return inicio, inicio.AddDate(0, 1, 0), true
}

// preencherMesesAtivo calcula MesesAtivo (sempre até hoje) e, em consultas
// históricas, MesesAtivoReferencia até o mês informado.
func (r *Repository) preencherMesesAtivo(clientes []Cliente, mes string) {
	hoje := ciclo.MesDeData(r.Agora())
	for i := range clientes {
		clientes[i].MesesAtivo = clientes[i].MesesAtivoAte(hoje)
		if mes != "" {
			clientes[i].MesesAtivoReferencia = clientes[i].MesesAtivoAte(mes)
		}
	}
}

// ListarParaComissao busca os clientes elegíveis para cálculo de comissão.
// Se mes for informado, restringe a quem já havia aderido até aquele mês.
func (r *Repository) ListarParaComissao(mes string) ([]Cliente, error) {
	q := r.DB.Where("valor > 0").Where("data_adesao IS NOT NULL")
	if mes != "" {
		_, fim, ok := intervaloDoMes(mes)
		if !ok {
			return nil, nil
		}
		q = q.Where("data_adesao < ?", fim)
	}

	var clientes []Cliente
	if err := q.Order("data_adesao ASC").Find(&clientes).Error; err != nil {
		return nil, err
	}
	r.preencherMesesAtivo(clientes, mes)
	return clientes, nil
}

// VendasDoMes busca os clientes que aderiram exatamente naquele mês.
func (r *Repository) VendasDoMes(mes string) ([]Cliente, error) {
	if mes == "" {
		mes = ciclo.MesDeData(r.Agora())
	}
	inicio, fim, ok := intervaloDoMes(mes)
	if !ok {
		return nil, nil
	}

	var clientes []Cliente
	err := r.DB.
		Where("valor > 0").
		Where("data_adesao >= ? AND data_adesao < ?", inicio, fim).
		Order("data_adesao ASC").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	r.preencherMesesAtivo(clientes, mes)
	return clientes, nil
}

// ContarVendasPorVendedor agrupa as vendas do mês por nome de vendedor.
func (r *Repository) ContarVendasPorVendedor(mes string) (map[string]int, error) {
	clientes, err := r.VendasDoMes(mes)
	if err != nil {
		return nil, err
	}
	contagem := make(map[string]int, len(clientes))
	for i := range clientes {
		contagem[clientes[i].Vendedor]++
	}
	return contagem, nil
}

// ListarInadimplentes busca os clientes com parcelas em atraso.
func (r *Repository) ListarInadimplentes(mes string) ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.
		Where("valor > 0").
		Where("parcelas_atrasadas > 0").
		Order("parcelas_atrasadas DESC").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	r.preencherMesesAtivo(clientes, mes)
	return clientes, nil
}

// ChurnsDoMes busca os clientes cancelados naquele mês específico.
func (r *Repository) ChurnsDoMes(mes string) ([]Cliente, error) {
	if mes == "" {
		mes = ciclo.MesDeData(r.Agora())
	}
	inicio, fim, ok := intervaloDoMes(mes)
	if !ok {
		return nil, nil
	}

	var clientes []Cliente
	err := r.DB.
		Where("valor > 0").
		Where("data_cancelamento >= ? AND data_cancelamento < ?", inicio, fim).
		Order("data_cancelamento DESC").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	r.preencherMesesAtivo(clientes, mes)
	return clientes, nil
}

// BuscarPorCNPJ retorna um cliente específico da visão.
func (r *Repository) BuscarPorCNPJ(cnpj string) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Where("cnpj = ?", cnpj).First(&c).Error; err != nil {
		return nil, err
	}
	c.MesesAtivo = c.MesesAtivoAte(ciclo.MesDeData(r.Agora()))
	return &c, nil
}
