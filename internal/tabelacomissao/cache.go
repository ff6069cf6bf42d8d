// internal/tabelacomissao/cache.go
package tabelacomissao

import (
	"log"
	"sync"
	"time"
)

// TTLPadrao é o tempo de vida do cache de configuração.
const TTLPadrao = time.Hour

// CacheConfiguracao mantém a configuração vigente em memória com expiração
// por TTL. Pertence à composição da aplicação e é injetado em quem precisa
// da configuração; leituras concorrentes toleram janelas curtas de valor
// antigo após uma atualização.
type CacheConfiguracao struct {
	repo *Repository
	ttl  time.Duration

	mu        sync.RWMutex
	valor     *TabelaComissao
	carregado time.Time

	// agora é substituível em teste para controlar a expiração.
	agora func() time.Time
}

// NewCacheConfiguracao cria o cache com o TTL padrão de 1 hora.
func NewCacheConfiguracao(repo *Repository) *CacheConfiguracao {
	return &CacheConfiguracao{
		repo:  repo,
		ttl:   TTLPadrao,
		agora: time.Now,
	}
}

// NewCacheConfiguracaoComRelogio permite injetar a fonte de tempo (testes).
func NewCacheConfiguracaoComRelogio(repo *Repository, agora func() time.Time) *CacheConfiguracao {
	c := NewCacheConfiguracao(repo)
	c.agora = agora
	return c
}

// Obter retorna a configuração vigente, consultando o banco apenas quando o
// cache expirou. Se o banco estiver indisponível, retorna a configuração
// padrão sem preencher o cache.
func (c *CacheConfiguracao) Obter() *TabelaComissao {
	c.mu.RLock()
	if c.valor != nil && c.agora().Sub(c.carregado) < c.ttl {
		v := c.valor
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	cfg, err := c.repo.BuscarAtiva()
	if err != nil {
		log.Printf("tabelacomissao: erro ao carregar configuração, usando padrão: %v", err)
		return Padrao()
	}

	c.mu.Lock()
	c.valor = cfg
	c.carregado = c.agora()
	c.mu.Unlock()
	return cfg
}

// Invalidar descarta o valor em cache, forçando recarga na próxima leitura.
func (c *CacheConfiguracao) Invalidar() {
	c.mu.Lock()
	c.valor = nil
	c.mu.Unlock()
}
