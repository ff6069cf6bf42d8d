// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas do motor de comissões, expostas em /metrics.
var (
	// ComissoesCalculadasTotal conta cálculos de comissão por fonte
	// (estimada ou historica).
	ComissoesCalculadasTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comissoes_calculadas_total",
		Help: "Total de comissões calculadas, por fonte do valor",
	}, []string{"fonte"})

	// SnapshotRegistrosTotal conta os registros do snapshot de inadimplência
	// por resultado (criada, existente, erro).
	SnapshotRegistrosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inadimplencia_snapshot_registros_total",
		Help: "Registros processados pelo snapshot de inadimplência, por resultado",
	}, []string{"resultado"})

	// ComissoesLiberadasTotal conta comissões bloqueadas liberadas via FIFO.
	ComissoesLiberadasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comissoes_liberadas_total",
		Help: "Total de comissões bloqueadas liberadas (FIFO)",
	})

	// ComissoesPerdidasTotal conta comissões marcadas como perdidas.
	ComissoesPerdidasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comissoes_perdidas_total",
		Help: "Total de comissões bloqueadas marcadas como perdidas",
	})
)
