package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/wepay-checkin/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// DefaultTransferTimeout с запасом на запрос в WeChat Pay при чекине.
	DefaultTransferTimeout = 15 * time.Second
	DefaultMaxAmount       = 20000
)

const (
	TransferGroup = "/transfer"
	ToUserRoute   = "/to_user"
	ConfirmRoute  = "/confirm"
	NotifyRoute   = "/notify"
	AmountRoute   = "/amount"
	LogsRoute     = "/logs"
	PendingRoute  = "/pending"

	UserGroup    = "/user"
	BalanceRoute = "/balance"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	TransferService TransferServicer
	UserService     UserServicer
	Notifications   NotificationParser
	AppID           string
	MchID           string
	// MaxAmount потолок одного конверта, в фэнях. При нуле DefaultMaxAmount.
	MaxAmount   int64
	CORSOrigins []string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	if args.MaxAmount <= 0 {
		args.MaxAmount = DefaultMaxAmount
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.CORS(args.CORSOrigins))
	r.Use(middlewares.Errors())

	transferHandler := NewTransferHandler(TransferHandlerArgs{
		TransferService: args.TransferService,
		UserService:     args.UserService,
		Notifications:   args.Notifications,
		AppID:           args.AppID,
		MchID:           args.MchID,
		MaxAmount:       args.MaxAmount,
	})
	userHandler := NewUserHandler(args.UserService)

	r.GET("/", welcome)

	transfer := r.Group(TransferGroup)
	transfer.POST(ToUserRoute, transferHandler.ToUser)
	transfer.POST(ConfirmRoute, transferHandler.Confirm)
	transfer.POST(NotifyRoute, transferHandler.Notify)
	transfer.GET(AmountRoute, transferHandler.Amount)
	transfer.GET(LogsRoute, transferHandler.Logs)
	transfer.GET(PendingRoute, transferHandler.Pending)

	user := r.Group(UserGroup)
	user.GET(BalanceRoute, userHandler.Balance)
	return r, nil
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to WePay API",
		"time":    time.Now().Format(time.RFC3339),
	})
}
