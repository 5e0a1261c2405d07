package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/soatbr/registration/cmd/registration/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "registration",
		Usage: "フードサービスのプロダクトカタログとユーザー登録基盤",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "サーバ関連コマンド",
				Commands: []*cli.Command{
					{
						Name:  "start",
						Usage: "HTTPサーバを起動",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.IntFlag{
								Name:  "port",
								Usage: "HTTPポート（省略時は環境変数またはデフォルトの8080）",
							},
						},
						Action: commands.ServerStartAction,
					},
				},
			},
			{
				Name:  "db",
				Usage: "データベース管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "migrate",
						Usage: "スキーマをデータベースに適用",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
						},
						Action: commands.DBMigrateAction,
					},
				},
			},
			{
				Name:  "product",
				Usage: "プロダクト管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "プロダクト一覧を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:  "category",
								Usage: "カテゴリで絞り込み (LANCHE/ACOMPANHAMENTO/BEBIDA/SOBREMESA)",
							},
						},
						Action: commands.ProductListAction,
					},
					{
						Name:  "show",
						Usage: "プロダクト詳細を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:     "name",
								Usage:    "プロダクト名",
								Required: true,
							},
						},
						Action: commands.ProductShowAction,
					},
					{
						Name:  "categories",
						Usage: "販売可能なプロダクトを持つカテゴリを表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
						},
						Action: commands.ProductCategoriesAction,
					},
				},
			},
			{
				Name:  "attendant",
				Usage: "アテンダント管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "アテンダント一覧を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
						},
						Action: commands.AttendantListAction,
					},
				},
			},
			{
				Name:  "customer",
				Usage: "顧客管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "非匿名の顧客一覧を表示",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
						},
						Action: commands.CustomerListAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
