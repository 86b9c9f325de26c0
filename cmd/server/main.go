package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"zoo-api/internal/config"
	"zoo-api/internal/database"
	"zoo-api/internal/handler"
	"zoo-api/internal/model"
	"zoo-api/internal/queue"
	"zoo-api/internal/repository"
	"zoo-api/internal/router"
	"zoo-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	roles := repository.NewRoleRepo(db)
	if err := roles.EnsureSeeded(ctx, model.SeededRoles); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	rdb := config.NewRedisClient()

	habitats := repository.NewHabitatRepo(db)
	especies := repository.NewEspecieRepo(db)
	animais := repository.NewAnimalRepo(db)
	alimentacoes := repository.NewAlimentacaoRepo(db)
	cuidadores := repository.NewCuidadorRepo(db)
	veterinarios := repository.NewVeterinarioRepo(db)
	funcionarios := repository.NewFuncionarioRepo(db)
	visitantes := repository.NewVisitanteRepo(db)
	eventos := repository.NewEventoRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	var notifier service.Notifier
	if cfg.AMQPURL != "" {
		notifier = queue.NewPublisher(cfg.AMQPURL)
		go queue.StartNotificationConsumer(cfg.AMQPURL)
	}

	deps := router.Deps{
		Cfg:          cfg,
		RDB:          rdb,
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Habitats:     handler.NewHabitatHandler(service.NewHabitatService(habitats)),
		Especies:     handler.NewEspecieHandler(service.NewEspecieService(especies)),
		Animais:      handler.NewAnimalHandler(service.NewAnimalService(animais, habitats, especies, cuidadores)),
		Alimentacoes: handler.NewAlimentacaoHandler(service.NewAlimentacaoService(alimentacoes, animais)),
		Cuidadores:   handler.NewCuidadorHandler(service.NewCuidadorService(cuidadores, funcionarios)),
		Veterinarios: handler.NewVeterinarioHandler(service.NewVeterinarioService(veterinarios, funcionarios)),
		Funcionarios: handler.NewFuncionarioHandler(service.NewFuncionarioService(funcionarios, users, cfg.BcryptCost)),
		Visitantes:   handler.NewVisitanteHandler(service.NewVisitanteService(visitantes, users, notifier, cfg.BcryptCost)),
		Eventos:      handler.NewEventoHandler(service.NewEventoService(eventos, visitantes, notifier)),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, deps)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
