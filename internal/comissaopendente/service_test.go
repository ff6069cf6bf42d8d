// internal/comissaopendente/service_test.go
package comissaopendente

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func newTestService(t *testing.T, agora time.Time) (*Service, *Repository) {
	t.Helper()
	repo := NewRepository(newTestDB(t))
	svc := NewService(repo, nil)
	svc.Agora = func() time.Time { return agora }
	return svc, repo
}

func clienteComAtraso(parcelas int) ClienteInadimplente {
	return ClienteInadimplente{
		CNPJ:               "12345678000190",
		RazaoSocial:        "Padaria Aurora LTDA",
		ParcelasAtrasadas:  parcelas,
		VendedorID:         3,
		VendedorNome:       "Marina",
		ValorMrr:           1000,
		PercentualComissao: 10,
	}
}

func TestProcessarSnapshotCriaUmaComissaoPorParcelaRetrodatada(t *testing.T) {
	// GIVEN um cliente com 3 parcelas atrasadas em abril de 2025
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)

	// WHEN o snapshot é processado
	resultados := svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3)})

	// THEN são criados três meses retidos, do mais recente para trás
	require.Len(t, resultados, 1)
	assert.True(t, resultados[0].Sucesso)
	assert.Equal(t, 3, resultados[0].RegistrosCriados)
	assert.Equal(t, 0, resultados[0].RegistrosExistentes)

	bloqueadas, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	require.Len(t, bloqueadas, 3)

	meses := []string{bloqueadas[0].MesReferencia, bloqueadas[1].MesReferencia, bloqueadas[2].MesReferencia}
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, meses)

	for _, c := range bloqueadas {
		assert.Equal(t, StatusBloqueada, c.Status)
		assert.Equal(t, MotivoInadimplencia, c.MotivoBloqueio)
		assert.Equal(t, 100.0, c.ValorComissao)
		assert.NotEmpty(t, c.ID)
	}
}

func TestProcessarSnapshotEhIdempotente(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)
	lote := []ClienteInadimplente{clienteComAtraso(3)}

	primeira := svc.ProcessarSnapshot(lote)
	require.Equal(t, 3, primeira[0].RegistrosCriados)

	// Reprocessar o mesmo lote não duplica nada
	segunda := svc.ProcessarSnapshot(lote)
	require.Len(t, segunda, 1)
	assert.True(t, segunda[0].Sucesso)
	assert.Equal(t, 0, segunda[0].RegistrosCriados)
	assert.Equal(t, 3, segunda[0].RegistrosExistentes)

	bloqueadas, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	assert.Len(t, bloqueadas, 3)
}

func TestProcessarSnapshotAgravamentoCriaApenasMesesNovos(t *testing.T) {
	// GIVEN um snapshot com 2 parcelas em abril
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)
	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(2)})

	// WHEN no mês seguinte o atraso sobe para 3 parcelas
	svc.Agora = func() time.Time { return time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC) }
	resultados := svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3)})

	// THEN só o mês ainda não retido é criado (2025-04); 2025-02 e 2025-03 já existiam
	assert.Equal(t, 1, resultados[0].RegistrosCriados)
	assert.Equal(t, 2, resultados[0].RegistrosExistentes)

	bloqueadas, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	require.Len(t, bloqueadas, 3)
	assert.Equal(t, "2025-02", bloqueadas[0].MesReferencia)
	assert.Equal(t, "2025-04", bloqueadas[2].MesReferencia)
}

func TestRegularizarClienteLiberaFIFO(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)
	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3)})

	// WHEN o cliente quita 2 parcelas
	liberadas, err := svc.RegularizarCliente("12345678000190", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, liberadas)

	// THEN os dois meses mais antigos foram pagos e só o mais recente segue retido
	restantes, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	require.Len(t, restantes, 1)
	assert.Equal(t, "2025-03", restantes[0].MesReferencia)

	status := new(string)
	*status = StatusPaga
	pagas, err := repo.Listar(nil, status, 0)
	require.NoError(t, err)
	require.Len(t, pagas, 2)
	assert.Equal(t, "2025-01", pagas[0].MesReferencia)
	assert.Equal(t, "2025-02", pagas[1].MesReferencia)
	for _, p := range pagas {
		require.NotNil(t, p.DataLiberacao)
		assert.True(t, p.DataLiberacao.Equal(agora))
	}
}

func TestRegularizarClienteExcedenteLiberaTudoSemErro(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)
	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3)})
	svc.RegularizarCliente("12345678000190", 2)

	// Pagar mais parcelas do que há bloqueadas libera o restante e para
	liberadas, err := svc.RegularizarCliente("12345678000190", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, liberadas)

	restantes, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	assert.Empty(t, restantes)

	// Sem nada bloqueado a liberação é um no-op
	liberadas, err = svc.RegularizarCliente("12345678000190", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, liberadas)
}

func TestMarcarPerdidaEncerraTodasAsBloqueadas(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)
	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3)})
	svc.RegularizarCliente("12345678000190", 1)

	perdidas, err := svc.MarcarPerdida("12345678000190", "")
	require.NoError(t, err)
	assert.Equal(t, 2, perdidas)

	// A comissão já paga não é tocada
	statusPaga := new(string)
	*statusPaga = StatusPaga
	pagas, err := repo.Listar(nil, statusPaga, 0)
	require.NoError(t, err)
	assert.Len(t, pagas, 1)

	statusPerdida := new(string)
	*statusPerdida = StatusPerdida
	registros, err := repo.Listar(nil, statusPerdida, 0)
	require.NoError(t, err)
	require.Len(t, registros, 2)
	for _, c := range registros {
		assert.Equal(t, "cancelamento", c.MotivoBloqueio)
	}

	bloqueadas, err := repo.BloqueadasPorCNPJ("12345678000190")
	require.NoError(t, err)
	assert.Empty(t, bloqueadas)
}

func TestResumoConsolidaPorVendedor(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)

	outro := clienteComAtraso(1)
	outro.CNPJ = "98765432000155"
	outro.RazaoSocial = "Mercearia Horizonte"
	outro.VendedorID = 7
	outro.VendedorNome = "Tiago"
	outro.ValorMrr = 500
	outro.PercentualComissao = 20

	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(3), outro})
	_, err := svc.RegularizarCliente("12345678000190", 2)
	require.NoError(t, err)

	resumos, err := repo.Resumo(nil, agora)
	require.NoError(t, err)
	require.Len(t, resumos, 2)

	porID := map[uint]ResumoVendedor{}
	for _, r := range resumos {
		porID[r.VendedorID] = r
	}

	marina := porID[3]
	assert.Equal(t, 1, marina.QtdBloqueadas)
	assert.Equal(t, 2, marina.QtdPagas)
	assert.Equal(t, 100.0, marina.TotalBloqueado)
	assert.Equal(t, 200.0, marina.TotalPago)
	// Liberadas hoje contam no mês corrente
	assert.Equal(t, 200.0, marina.PagoMesAtual)

	tiago := porID[7]
	assert.Equal(t, 1, tiago.QtdBloqueadas)
	assert.Equal(t, 0, tiago.QtdPagas)
	assert.Equal(t, 100.0, tiago.TotalBloqueado)
}

func TestResumoFiltraPorVendedor(t *testing.T) {
	agora := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, agora)

	outro := clienteComAtraso(1)
	outro.CNPJ = "98765432000155"
	outro.VendedorID = 7
	outro.VendedorNome = "Tiago"
	svc.ProcessarSnapshot([]ClienteInadimplente{clienteComAtraso(2), outro})

	vendedorID := new(uint)
	*vendedorID = 7
	resumos, err := repo.Resumo(vendedorID, agora)
	require.NoError(t, err)
	require.Len(t, resumos, 1)
	assert.Equal(t, uint(7), resumos[0].VendedorID)
}

func TestDiasBloqueadaERecemLiberada(t *testing.T) {
	bloqueio := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	c := ComissaoPendente{DataBloqueio: bloqueio}

	assert.Equal(t, 0, c.DiasBloqueada(bloqueio))
	assert.Equal(t, 10, c.DiasBloqueada(bloqueio.AddDate(0, 0, 10)))
	assert.False(t, c.RecemLiberada(bloqueio.AddDate(0, 0, 10)))

	liberacao := bloqueio.AddDate(0, 0, 15)
	c.DataLiberacao = &liberacao
	// Depois de liberada a contagem congela na data de liberação
	assert.Equal(t, 15, c.DiasBloqueada(liberacao.AddDate(0, 0, 30)))
	assert.True(t, c.RecemLiberada(liberacao.AddDate(0, 0, 5)))
	assert.False(t, c.RecemLiberada(liberacao.AddDate(0, 0, 8)))
}

func TestCompetenciaFormatada(t *testing.T) {
	c := ComissaoPendente{MesReferencia: "2025-03"}
	assert.Equal(t, "03/2025", c.Competencia())

	vazia := ComissaoPendente{MesReferencia: "ruim"}
	assert.Equal(t, "", vazia.Competencia())
}
