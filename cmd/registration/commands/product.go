package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/soatbr/registration/internal/module/catalog/domain"
)

// ProductListAction はプロダクト一覧を表示するコマンドのアクション
func ProductListAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	var products []*domain.Product
	if raw := cmd.String("category"); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			return fmt.Errorf("カテゴリが不正です: %w", err)
		}
		products, err = appCtx.Container.ProductService.ListByCategory(ctx, category)
		if err != nil {
			return err
		}
	} else {
		products, err = appCtx.Container.ProductService.List(ctx)
		if err != nil {
			return err
		}
	}

	if len(products) == 0 {
		fmt.Println("プロダクトが登録されていません")
		return nil
	}

	fmt.Printf("%-38s %-24s %-16s %-12s %10s\n", "ID", "NAME", "CATEGORY", "STATUS", "PRICE")
	for _, p := range products {
		fmt.Printf("%-38s %-24s %-16s %-12s %10.2f\n", p.ID, p.Name, p.Category, p.Status, p.Price)
	}

	return nil
}

// ProductShowAction はプロダクト詳細を表示するコマンドのアクション
func ProductShowAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	product, err := appCtx.Container.ProductService.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("プロダクトが見つかりません: %s", name)
	}

	fmt.Printf("ID:          %s\n", product.ID)
	fmt.Printf("Name:        %s\n", product.Name)
	fmt.Printf("Description: %s\n", product.Description)
	fmt.Printf("Price:       %.2f\n", product.Price)
	fmt.Printf("Category:    %s\n", product.Category)
	fmt.Printf("Status:      %s\n", product.Status)
	fmt.Printf("Image:       %s\n", product.Image)

	return nil
}

// ProductCategoriesAction はDISPONIVELなプロダクトを持つカテゴリを表示するコマンドのアクション
func ProductCategoriesAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	categories, err := appCtx.Container.ProductService.ListAvailableCategories(ctx)
	if err != nil {
		return err
	}

	for _, category := range categories {
		fmt.Println(category)
	}

	return nil
}
