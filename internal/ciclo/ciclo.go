// internal/ciclo/ciclo.go
package ciclo

import (
	"fmt"
	"time"
)

// TamanhoCiclo é a quantidade de meses do ciclo de comissão recorrente.
const TamanhoCiclo = 7

/* ============================== Meses (YYYY-MM) ============================== */

// MesValido verifica se a string está no formato YYYY-MM.
func MesValido(mes string) bool {
	if len(mes) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", mes)
	return err == nil
}

// MesDeData converte uma data para o mês YYYY-MM.
func MesDeData(t time.Time) string {
	return t.Format("2006-01")
}

// SomarMeses soma n meses (pode ser negativo) a um mês YYYY-MM.
// Retorna string vazia se o mês for inválido.
func SomarMeses(mes string, n int) string {
	t, err := time.Parse("2006-01", mes)
	if err != nil {
		return ""
	}
	ano, m := t.Year(), int(t.Month())
	total := ano*12 + (m - 1) + n
	return fmt.Sprintf("%04d-%02d", total/12, (total%12)+1)
}

// MesAnterior retorna o mês imediatamente anterior.
func MesAnterior(mes string) string {
	return SomarMeses(mes, -1)
}

// MesesEntre calcula a quantidade de meses de comissão entre dois meses.
// O mês de adesão não conta: a primeira comissão cai no mês seguinte,
// então adesão nov/2025 e fim dez/2025 resultam em 1.
func MesesEntre(inicio, fim string) int {
	ti, err := time.Parse("2006-01", inicio)
	if err != nil {
		return 0
	}
	tf, err := time.Parse("2006-01", fim)
	if err != nil {
		return 0
	}
	return (tf.Year()-ti.Year())*12 + int(tf.Month()) - int(ti.Month())
}

/* ============================== Ciclo de comissão ============================== */

// MesesCiclo gera os meses do ciclo de comissão de um cliente.
// O ciclo começa no mês SEGUINTE à adesão: adesão em 2025-05 gera
// [2025-06 ... 2025-12]. Retorna nil se o mês de adesão for inválido.
func MesesCiclo(mesAdesao string) []string {
	if !MesValido(mesAdesao) {
		return nil
	}
	meses := make([]string, 0, TamanhoCiclo)
	for i := 1; i <= TamanhoCiclo; i++ {
		meses = append(meses, SomarMeses(mesAdesao, i))
	}
	return meses
}

// PosicaoNoCiclo retorna o índice (base 0) do mês de referência dentro do
// ciclo do cliente, ou -1 se estiver fora do ciclo.
func PosicaoNoCiclo(mesAdesao, mesReferencia string) int {
	for i, m := range MesesCiclo(mesAdesao) {
		if m == mesReferencia {
			return i
		}
	}
	return -1
}
