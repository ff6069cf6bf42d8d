// internal/comissaopendente/model.go
package comissaopendente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status do ciclo de vida de uma comissão retida.
// Transições válidas: bloqueada → paga (liberação FIFO ou regularização)
// e bloqueada → perdida (cancelamento definitivo). Nada mais.
const (
	StatusBloqueada = "bloqueada"
	StatusPaga      = "paga"
	StatusPerdida   = "perdida"
)

// MotivoInadimplencia é o motivo padrão de bloqueio no snapshot.
const MotivoInadimplencia = "inadimplencia"

// ComissaoPendente é uma comissão retida por inadimplência, uma linha por
// (cliente, mês de comissão). O índice único garante a idempotência do
// snapshot: reprocessar a mesma semana não duplica registros.
type ComissaoPendente struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	CNPJ         string `gorm:"size:20;not null;uniqueIndex:idx_cnpj_mes" json:"cnpj"`
	RazaoSocial  string `gorm:"size:255" json:"razaoSocial"`
	VendedorID   uint   `gorm:"index" json:"vendedorId"`
	VendedorNome string `gorm:"size:255" json:"vendedorNome"`

	// MesReferencia é o mês de comissão retido, formato YYYY-MM.
	MesReferencia string `gorm:"size:7;not null;uniqueIndex:idx_cnpj_mes;index" json:"mesReferencia"`

	// ParcelaNumero é a posição da parcela atrasada no snapshot (base 1).
	ParcelaNumero int `gorm:"not null;default:0" json:"parcelaNumero"`

	ValorMrr           float64 `gorm:"not null;default:0" json:"valorMrr"`
	PercentualAplicado float64 `gorm:"not null;default:0" json:"percentualAplicado"`
	ValorComissao      float64 `gorm:"not null;default:0" json:"valorComissao"`

	Status         string     `gorm:"size:20;not null;default:'bloqueada';index" json:"status"`
	MotivoBloqueio string     `gorm:"size:255" json:"motivoBloqueio"`
	DataBloqueio   time.Time  `gorm:"not null" json:"dataBloqueio"`
	DataLiberacao  *time.Time `json:"dataLiberacao"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate preenche o id quando o chamador não informou.
func (c *ComissaoPendente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ComissaoPendente{})
}

// Competencia formata o mês de referência como MM/YYYY para exibição.
func (c *ComissaoPendente) Competencia() string {
	if len(c.MesReferencia) != 7 {
		return ""
	}
	return c.MesReferencia[5:7] + "/" + c.MesReferencia[0:4]
}

// DiasBloqueada conta os dias desde o bloqueio (até a liberação, se houve).
func (c *ComissaoPendente) DiasBloqueada(agora time.Time) int {
	fim := agora
	if c.DataLiberacao != nil {
		fim = *c.DataLiberacao
	}
	dias := int(fim.Sub(c.DataBloqueio).Hours() / 24)
	if dias < 0 {
		return 0
	}
	return dias
}

// RecemLiberada informa se a liberação ocorreu nos últimos 7 dias.
func (c *ComissaoPendente) RecemLiberada(agora time.Time) bool {
	return c.DataLiberacao != nil && agora.Sub(*c.DataLiberacao) <= 7*24*time.Hour
}
