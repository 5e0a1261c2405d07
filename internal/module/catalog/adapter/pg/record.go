package pg

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/platform/database"
)

// productRecord はproductテーブルの行を表します
type productRecord struct {
	ID          pgtype.UUID
	Name        pgtype.Text
	Description pgtype.Text
	Price       pgtype.Numeric
	Category    pgtype.Text
	Status      pgtype.Text
	Image       pgtype.Text
}

// productToRecord はドメインのProductを行レコードに変換します。
// nilはnilのまま伝播します
func productToRecord(product *domain.Product) *productRecord {
	if product == nil {
		return nil
	}
	return &productRecord{
		ID:          database.UUIDToPg(product.ID),
		Name:        database.StringToText(product.Name),
		Description: database.StringToText(product.Description),
		Price:       database.Float64ToNumeric(product.Price),
		Category:    database.StringToText(string(product.Category)),
		Status:      database.StringToText(string(product.Status)),
		Image:       database.StringToText(product.Image),
	}
}

// recordToProduct は行レコードをドメインのProductに変換します。
// nilはnilのまま伝播します
func recordToProduct(record *productRecord) *domain.Product {
	if record == nil {
		return nil
	}
	return &domain.Product{
		ID:          database.PgToUUID(record.ID),
		Name:        database.TextToString(record.Name),
		Description: database.TextToString(record.Description),
		Price:       database.NumericToFloat64(record.Price),
		Category:    domain.Category(database.TextToString(record.Category)),
		Status:      domain.Status(database.TextToString(record.Status)),
		Image:       database.TextToString(record.Image),
	}
}

// recordsToProducts は行レコードのスライスを変換します
func recordsToProducts(records []*productRecord) []*domain.Product {
	if records == nil {
		return nil
	}
	products := make([]*domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, recordToProduct(record))
	}
	return products
}
