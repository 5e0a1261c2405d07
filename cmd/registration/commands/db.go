package commands

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// DBMigrateAction はスキーマをデータベースに適用するコマンドのアクション
func DBMigrateAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	slog.Info("マイグレーションを開始")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := appCtx.Container.Database.Migrate(ctx); err != nil {
		return err
	}

	slog.Info("マイグレーションが完了しました")

	return nil
}
