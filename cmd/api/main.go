package main

import (
	"time"

	httpadp "nftlend-backend/internal/adapter/http"
	"nftlend-backend/internal/adapter/repository/mysql"
	tokenadp "nftlend-backend/internal/adapter/token"
	"nftlend-backend/internal/config"
	"nftlend-backend/internal/events"
	"nftlend-backend/internal/infrastructure/cache"
	"nftlend-backend/internal/infrastructure/db"
	"nftlend-backend/internal/usecase/creditgate"
	loanuc "nftlend-backend/internal/usecase/loan"
	"nftlend-backend/internal/usecase/vault"
	"nftlend-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open mysql")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("open redis")
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	values := tokenadp.NewValueClient(cfg.TokenSvcURL)
	deeds := tokenadp.NewDeedClient(cfg.NFTSvcURL)
	oracle := tokenadp.NewOracleClient(cfg.OracleURL)

	gate := creditgate.New(userRepo, oracle)
	v := vault.New(deeds, cfg.VaultID)
	pub := events.NewRedisPublisher(rdb, events.DefaultChannel)

	uc := loanuc.NewUsecase(loanRepo, txm, gate, v, values, pub, loanuc.Params{
		Admin:   cfg.AdminID,
		Reserve: cfg.ReserveID,
	})

	e := httpadp.NewRouter(uc, rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
