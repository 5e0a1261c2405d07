package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// AttendantListAction はアテンダント一覧を表示するコマンドのアクション
func AttendantListAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	attendants, err := appCtx.Container.AttendantService.List(ctx)
	if err != nil {
		return err
	}

	if len(attendants) == 0 {
		fmt.Println("アテンダントが登録されていません")
		return nil
	}

	fmt.Printf("%-38s %-24s %-28s %-14s\n", "ID", "NAME", "EMAIL", "CPF")
	for _, a := range attendants {
		fmt.Printf("%-38s %-24s %-28s %-14s\n", a.ID, a.Name, a.Email, a.CPF.Formatted())
	}

	return nil
}

// CustomerListAction は非匿名の顧客一覧を表示するコマンドのアクション
func CustomerListAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	customers, err := appCtx.Container.CustomerService.ListNotAnonymous(ctx)
	if err != nil {
		return err
	}

	if len(customers) == 0 {
		fmt.Println("顧客が登録されていません")
		return nil
	}

	fmt.Printf("%-38s %-24s %-28s %-14s\n", "ID", "NAME", "EMAIL", "CPF")
	for _, c := range customers {
		cpf := ""
		if c.CPF != nil {
			cpf = c.CPF.Formatted()
		}
		fmt.Printf("%-38s %-24s %-28s %-14s\n", c.ID, c.Name, c.Email, cpf)
	}

	return nil
}
