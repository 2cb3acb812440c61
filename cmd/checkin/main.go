// Command checkin управляет страницей красных конвертов из терминала.
//
// Использование:
//
//	checkin [flags] load|signin|confirm|notify|balance|amount|logs
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/wepay-checkin/internal/checkin"
	"github.com/fsdevblog/wepay-checkin/internal/logger"
	"github.com/shopspring/decimal"
)

type stdoutToaster struct{}

func (stdoutToaster) Toast(msg string) {
	fmt.Println("[toast]", msg) //nolint:forbidigo
}

func main() {
	baseURL := flag.String("b", "http://localhost:8080", "Backend base URL")
	openID := flag.String("o", checkin.DefaultOpenID, "User openid")
	amount := flag.Int64("n", checkin.DefaultAmount, "Red packet amount, fen")
	remark := flag.String("remark", checkin.DefaultRemark, "Transfer remark")
	storePath := flag.String("s", ".checkin_pending.json", "Pending transfer file, empty to keep it in memory")
	appID := flag.String("appid", "", "AppID sent on confirmation")
	mchID := flag.String("mchid", "", "MchID sent on confirmation")
	flag.Parse()

	command := "load"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := checkin.Options{
		BaseURL: *baseURL,
		OpenID:  *openID,
		Amount:  *amount,
		Remark:  *remark,
		AppID:   *appID,
		MchID:   *mchID,
		Toaster: stdoutToaster{},
		Logger:  logger.New(os.Stderr),
	}
	if *storePath != "" {
		opts.Store = checkin.NewFileStore(*storePath)
	}
	c := checkin.New(opts)

	if err := run(ctx, c, command); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:forbidigo
		os.Exit(1)
	}
}

func run(ctx context.Context, c *checkin.Controller, command string) error {
	// ждущий перевод нужен до confirm/notify.
	if err := c.Load(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	switch command {
	case "load":
	case "signin":
		if _, err := c.SignIn(ctx); err != nil {
			var statusErr *checkin.StatusError
			if !errors.As(err, &statusErr) {
				return err //nolint:wrapcheck
			}
		}
	case "confirm":
		if err := c.ConfirmTransfer(ctx); err != nil {
			return err //nolint:wrapcheck
		}
	case "notify":
		if _, err := c.Notify(ctx); err != nil {
			return err //nolint:wrapcheck
		}
	case "balance":
		if err := c.FetchBalance(ctx); err != nil {
			return err //nolint:wrapcheck
		}
	case "amount":
		value, err := c.FetchAmount(ctx)
		if err != nil {
			return err //nolint:wrapcheck
		}
		fmt.Printf("amount: %s yuan\n", yuan(value)) //nolint:forbidigo
		return nil
	case "logs":
		if err := c.FetchLogs(ctx); err != nil {
			return err //nolint:wrapcheck
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	printState(c.State())
	return nil
}

func printState(s checkin.State) {
	fmt.Printf("openid: %s\nbalance: %s yuan\n", s.OpenID, yuan(s.Balance)) //nolint:forbidigo
	if s.OutBillNo != "" || s.PackageInfo != "" {
		fmt.Printf("pending: out_bill_no=%s package_info=%s\n", s.OutBillNo, s.PackageInfo) //nolint:forbidigo
	}
	for _, item := range s.TransferLogs {
		fmt.Println(string(item)) //nolint:forbidigo
	}
}

func yuan(fen int64) string {
	return decimal.New(fen, -2).StringFixed(2) //nolint:mnd
}
