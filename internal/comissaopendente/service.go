// internal/comissaopendente/service.go
package comissaopendente

import (
	"log"
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"github.com/KromaEnergia/api-comissoes/internal/metrics"
	"github.com/KromaEnergia/api-comissoes/internal/notificacao"
)

// ClienteInadimplente é uma entrada do snapshot semanal de inadimplência.
type ClienteInadimplente struct {
	CNPJ               string  `json:"cnpj"`
	RazaoSocial        string  `json:"razaoSocial"`
	ParcelasAtrasadas  int     `json:"parcelasAtrasadas"`
	VendedorID         uint    `json:"vendedorId"`
	VendedorNome       string  `json:"vendedorNome"`
	ValorMrr           float64 `json:"valorMrr"`
	PercentualComissao float64 `json:"percentualComissao"`
}

// ResultadoProcessamento é o desfecho do snapshot para um cliente.
type ResultadoProcessamento struct {
	CNPJ               string `json:"cnpj"`
	RazaoSocial        string `json:"razaoSocial"`
	RegistrosCriados   int    `json:"registrosCriados"`
	RegistrosExistentes int   `json:"registrosExistentes"`
	Sucesso            bool   `json:"sucesso"`
	Erro               string `json:"erro,omitempty"`
}

// Service orquestra o ciclo de vida das comissões retidas.
type Service struct {
	Repo        *Repository
	Notificador *notificacao.Notificador

	// Agora é substituível em teste.
	Agora func() time.Time
}

// NewService monta o serviço.
func NewService(repo *Repository, notificador *notificacao.Notificador) *Service {
	return &Service{Repo: repo, Notificador: notificador, Agora: time.Now}
}

// ProcessarSnapshot cria uma comissão bloqueada por parcela atrasada de cada
// cliente, retrodatada: com k parcelas atrasadas hoje, os meses retidos são
// mês-1 ... mês-k. A operação é idempotente (índice único) e um cliente com
// erro não interrompe o restante do lote.
func (s *Service) ProcessarSnapshot(clientes []ClienteInadimplente) []ResultadoProcessamento {
	agora := s.Agora()
	mesAtual := ciclo.MesDeData(agora)

	resultados := make([]ResultadoProcessamento, 0, len(clientes))
	for _, cli := range clientes {
		resultado := ResultadoProcessamento{
			CNPJ:        cli.CNPJ,
			RazaoSocial: cli.RazaoSocial,
			Sucesso:     true,
		}

		valorComissao := cli.ValorMrr * cli.PercentualComissao / 100

		for parcela := 1; parcela <= cli.ParcelasAtrasadas; parcela++ {
			registro := &ComissaoPendente{
				CNPJ:               cli.CNPJ,
				RazaoSocial:        cli.RazaoSocial,
				VendedorID:         cli.VendedorID,
				VendedorNome:       cli.VendedorNome,
				MesReferencia:      ciclo.SomarMeses(mesAtual, -parcela),
				ParcelaNumero:      parcela,
				ValorMrr:           cli.ValorMrr,
				PercentualAplicado: cli.PercentualComissao,
				ValorComissao:      valorComissao,
				Status:             StatusBloqueada,
				MotivoBloqueio:     MotivoInadimplencia,
				DataBloqueio:       agora,
			}

			criada, err := s.Repo.InserirIgnorandoConflito(registro)
			switch {
			case err != nil:
				// Erro de banco fica anotado no cliente e o lote segue.
				log.Printf("comissaopendente: erro ao inserir parcela %d de %s: %v", parcela, cli.CNPJ, err)
				resultado.Sucesso = false
				resultado.Erro = err.Error()
				metrics.SnapshotRegistrosTotal.WithLabelValues("erro").Inc()
			case criada:
				resultado.RegistrosCriados++
				metrics.SnapshotRegistrosTotal.WithLabelValues("criada").Inc()
			default:
				resultado.RegistrosExistentes++
				metrics.SnapshotRegistrosTotal.WithLabelValues("existente").Inc()
			}
		}

		log.Printf("comissaopendente: processado %s: %d criados, %d existentes",
			cli.CNPJ, resultado.RegistrosCriados, resultado.RegistrosExistentes)
		resultados = append(resultados, resultado)
	}
	return resultados
}

// RegularizarCliente libera por FIFO as comissões de um cliente que quitou
// parcelas, usada pelo webhook de pagamento e pela regularização manual.
// Se há menos bloqueadas que parcelas pagas, libera todas sem erro.
func (s *Service) RegularizarCliente(cnpj string, parcelasPagas int) (int, error) {
	liberadas, err := s.Repo.LiberarFIFO(cnpj, parcelasPagas, s.Agora())
	if liberadas > 0 {
		metrics.ComissoesLiberadasTotal.Add(float64(liberadas))
		if s.Notificador != nil {
			s.Notificador.ComissoesLiberadas(cnpj, liberadas)
		}
	}
	return liberadas, err
}

// MarcarPerdida marca como perdidas todas as comissões bloqueadas do cliente
// (cancelamento definitivo).
func (s *Service) MarcarPerdida(cnpj, motivo string) (int, error) {
	if motivo == "" {
		motivo = "cancelamento"
	}
	perdidas, err := s.Repo.MarcarPerdidas(cnpj, motivo)
	if perdidas > 0 {
		metrics.ComissoesPerdidasTotal.Add(float64(perdidas))
		if s.Notificador != nil {
			s.Notificador.ComissoesPerdidas(cnpj, perdidas, motivo)
		}
	}
	return perdidas, err
}
