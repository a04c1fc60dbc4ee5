package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"investment-calculator/config"
	"investment-calculator/repository"
	"investment-calculator/service"
)

const redisPingTimeout = 3 * time.Second

// app holds the service together with the adapters that need closing.
type app struct {
	service *service.InvestmentService
	closers []func() error
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	var repo repository.CalculationRepository
	if cfg.SQLitePath != "" {
		sqliteRepo, err := repository.OpenSQLiteCalculationRepository(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqliteRepo.Close)
		repo = sqliteRepo
		logger.Info("using sqlite history", zap.String("path", cfg.SQLitePath))
	} else {
		repo = repository.NewCalculationRepositoryMemory()
	}

	a.service = service.NewInvestmentService(repo, newCache(ctx, cfg, logger, a), logger)
	return a, nil
}

// newCache prefers Redis and falls back to memory when it is not reachable.
func newCache(ctx context.Context, cfg config.Config, logger *zap.Logger, a *app) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, caching in memory",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}

	a.closers = append(a.closers, redisCache.Close)
	logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	return redisCache
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// closeLogged closes the adapters and logs the failure; commands have
// already produced their result by then.
func (a *app) closeLogged(logger *zap.Logger) {
	if err := a.Close(); err != nil {
		logger.Warn("closing adapters", zap.Error(err))
	}
}
