package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/wepay-checkin/internal/app"
	"github.com/fsdevblog/wepay-checkin/internal/config"
	"github.com/fsdevblog/wepay-checkin/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l, closer := logger.NewWithFile(os.Stdout, conf.LogFile)

	err := app.New(conf, l).Run()
	_ = closer.Close()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
