package main

import (
	"log"
	"net/http"

	"github.com/KromaEnergia/api-comissoes/internal/auth"
	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/comissao"
	"github.com/KromaEnergia/api-comissoes/internal/comissaopendente"
	"github.com/KromaEnergia/api-comissoes/internal/config"
	"github.com/KromaEnergia/api-comissoes/internal/historicopagamentos"
	"github.com/KromaEnergia/api-comissoes/internal/notificacao"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/utils/db"
	"github.com/KromaEnergia/api-comissoes/internal/vendedor"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()
	cfg := config.MustLoad()

	database, err := db.ConnectDataBase(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	for _, migrate := range []func(*gorm.DB) error{
		tabelacomissao.Migrate,
		comissaopendente.Migrate,
		historicopagamentos.Migrate,
		vendedor.Migrate,
		auth.Migrate,
	} {
		if err := migrate(database); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}

	// Repositórios
	configRepo := tabelacomissao.NewRepository(database)
	clienteRepo := cliente.NewRepository(database)
	vendedorRepo := vendedor.NewRepository(database)
	historicoRepo := historicopagamentos.NewRepository(database)
	pendenteRepo := comissaopendente.NewRepository(database)

	// Seeds
	if err := configRepo.GarantirPadrao(); err != nil {
		log.Fatal("Erro ao semear configuração de comissão:", err)
	}
	if err := vendedorRepo.GarantirVendaAntiga(); err != nil {
		log.Fatal("Erro ao semear vendedor de vendas antigas:", err)
	}

	// Serviços
	configCache := tabelacomissao.NewCacheConfiguracao(configRepo)
	calculadora := comissao.NewCalculadora(configCache, historicoRepo)
	notificador := notificacao.NewNotificador(cfg.WebhookURL)
	pendenteService := comissaopendente.NewService(pendenteRepo, notificador)

	// Handlers
	authHandler := auth.NewHandler(database)
	configHandler := tabelacomissao.NewHandler(configRepo, configCache)
	vendedorHandler := vendedor.NewHandler(vendedorRepo)
	comissaoHandler := comissao.NewHandler(calculadora, clienteRepo, vendedorRepo)
	pendenteHandler := comissaopendente.NewHandler(pendenteService, pendenteRepo)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Comissões calculadas
	api.HandleFunc("/comissoes", comissaoHandler.ListarComissoes).Methods("GET")
	api.HandleFunc("/vendedores/{id}/comissoes", comissaoHandler.ListarComissoesDoVendedor).Methods("GET")
	api.HandleFunc("/vendedores/{id}/tier", comissaoHandler.BuscarTierDoVendedor).Methods("GET")

	// Vendedores
	api.HandleFunc("/vendedores", vendedorHandler.Listar).Methods("GET")
	api.HandleFunc("/vendedores", vendedorHandler.Criar).Methods("POST")

	// Configuração de comissão
	api.HandleFunc("/configuracao-comissao", configHandler.Buscar).Methods("GET")
	api.HandleFunc("/configuracao-comissao", configHandler.Atualizar).Methods("PUT")

	// Inadimplência e comissões pendentes
	api.HandleFunc("/inadimplencia/snapshot", pendenteHandler.ProcessarSnapshot).Methods("POST")
	api.HandleFunc("/comissoes-pendentes", pendenteHandler.Listar).Methods("GET")
	api.HandleFunc("/comissoes-pendentes/liberadas", pendenteHandler.ListarLiberadas).Methods("GET")
	api.HandleFunc("/comissoes-pendentes/resumo", pendenteHandler.Resumo).Methods("GET")
	api.HandleFunc("/comissoes-pendentes/regularizar", pendenteHandler.Regularizar).Methods("POST")
	api.HandleFunc("/comissoes-pendentes/perdida", pendenteHandler.MarcarPerdida).Methods("POST")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Servidor rodando na porta %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, c.Handler(r)))
}
