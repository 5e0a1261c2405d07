package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/soatbr/registration/internal/interface/rest"
)

// ServerStartAction はHTTPサーバを起動するコマンドのアクション
func ServerStartAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	port := appCtx.Config.HTTP.Port
	if cmd.IsSet("port") {
		port = int(cmd.Int("port"))
	}

	log := appCtx.Logger()

	handlers := rest.Handlers{
		Product:   rest.NewProductHandler(appCtx.Container.ProductService, log),
		Attendant: rest.NewAttendantHandler(appCtx.Container.AttendantService, log),
		Customer:  rest.NewCustomerHandler(appCtx.Container.CustomerService, log),
	}

	server := rest.NewServer(port, rest.NewRouter(handlers, log), log)
	return server.Run(ctx)
}
