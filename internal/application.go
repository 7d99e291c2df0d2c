package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tristrike-backend/internal/config"
	"github.com/rocketscienceinc/tristrike-backend/internal/entity"
	"github.com/rocketscienceinc/tristrike-backend/internal/repository"
	"github.com/rocketscienceinc/tristrike-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tristrike-backend/internal/service"
	"github.com/rocketscienceinc/tristrike-backend/internal/usecase"
	"github.com/rocketscienceinc/tristrike-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	roundRepo := repository.NewRoundRepository()
	scoreRepo := repository.NewScoreRepository(redisStorage)
	bot := service.NewBotService(logger, service.BotOptions{
		Delay:         conf.Game.CPUDelay,
		SearchOpening: conf.Game.SearchOpening,
	})
	gameManager := usecase.NewGameManager(logger, roundRepo, scoreRepo, bot)

	router := rest.NewRouter(logger, gameManager, rest.RoundDefaults{
		Mode:      entity.Mode(conf.Game.Mode),
		HumanMark: entity.Mark(conf.Game.HumanMark),
		CPUStarts: conf.Game.CPUStarts,
	})

	group, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		log.Info("Application context canceled, shutting down")
		return nil
	})

	return group.Wait()
}
