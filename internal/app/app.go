package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/wepay-checkin/internal/config"
	"github.com/fsdevblog/wepay-checkin/internal/repository/pgrepo"
	"github.com/fsdevblog/wepay-checkin/internal/repository/redisrepo"
	"github.com/fsdevblog/wepay-checkin/internal/repository/repoargs"
	"github.com/fsdevblog/wepay-checkin/internal/service"
	"github.com/fsdevblog/wepay-checkin/internal/transport/api"
	"github.com/fsdevblog/wepay-checkin/internal/transport/reconcile"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
	"github.com/fsdevblog/wepay-checkin/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// драйвер применения миграций postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// драйвер чтения миграций из файлов (*.sql в нашем случае).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run блокируется до SIGINT/SIGTERM или падения компонента. По сигналу возвращает context.Canceled.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":   a.Config.RunAddress,
		"redis":     a.Config.RedisAddr,
		"appid":     a.Config.WxPay.AppID,
		"mchid":     a.Config.WxPay.MchID,
		"wxpayHost": a.Config.WxPay.Host,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	rdb, redisErr := redisrepo.Connect(notifyCtx, redisrepo.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	if redisErr != nil {
		return fmt.Errorf("app run: %w", redisErr)
	}
	defer func() { _ = rdb.Close() }()

	guard := redisrepo.NewSignInGuard(rdb, a.Config.SignIn.RatePerMinute, a.Config.SignIn.LockTTL)

	merchant, merchantErr := wxpay.LoadMerchant(wxpay.MerchantFiles{
		AppID:               a.Config.WxPay.AppID,
		MchID:               a.Config.WxPay.MchID,
		CertificateSerialNo: a.Config.WxPay.CertSerialNo,
		PrivateKeyPath:      a.Config.WxPay.PrivateKeyPath,
		PublicKeyID:         a.Config.WxPay.PublicKeyID,
		PublicKeyPath:       a.Config.WxPay.PublicKeyPath,
		APIv3Key:            a.Config.WxPay.APIv3Key,
	})
	if merchantErr != nil {
		return fmt.Errorf("app run: %w", merchantErr)
	}
	payClient := wxpay.New(a.Config.WxPay.Host, merchant)

	services, sErr := service.Factory(unitOfWork, payClient, guard, service.TransferOptions{
		AppID:         a.Config.WxPay.AppID,
		MchID:         a.Config.WxPay.MchID,
		NotifyURL:     a.Config.WxPay.NotifyURL,
		NotFoundGrace: a.Config.Reconcile.NotFoundGrace,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		TransferService: services.TransferService,
		UserService:     services.UserService,
		Notifications:   payClient,
		AppID:           a.Config.WxPay.AppID,
		MchID:           a.Config.WxPay.MchID,
		MaxAmount:       a.Config.SignIn.MaxAmount,
		CORSOrigins:     a.Config.CORSOrigins,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	processor := reconcile.New(services.TransferService, payClient, a.Logger).
		SetWorkers(a.Config.Reconcile.Workers).
		SetLimitPerIteration(a.Config.Reconcile.Limit).
		SetPollInterval(a.Config.Reconcile.Interval)

	g, gCtx := errgroup.WithContext(notifyCtx)

	g.Go(func() error {
		a.Logger.Infof("listening on %s", a.Config.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return processor.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// репозиторий юзеров
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %w", regErr)
	}

	// репозиторий счетов переводов
	billRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransferBillRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransferBillRepoName),
		billRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %w", regErr)
	}

	return unitOfWork, nil
}
