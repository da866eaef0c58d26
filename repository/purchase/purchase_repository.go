package purchase

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

// PurchaseRepository persists completed purchases. Writes are append-only; a
// record is never updated after the executor saves it.
type PurchaseRepository interface {
	InsertPurchaseTx(ctx context.Context, tx *sqlx.Tx, rec *model.PurchaseRecord) error
	GetByBuyer(ctx context.Context, buyerID uint64) ([]model.PurchaseRecord, error)
	GetByStore(ctx context.Context, storeID string) ([]model.PurchaseRecord, error)
}

func NewPurchaseRepository(conn *sqlx.DB) PurchaseRepository {
	return &SQL{conn: conn}
}

const (
	insertPurchaseQuery = "INSERT INTO purchase (id, buyer_id, total_price, shipping_address, contact_info, source, tracking_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	insertLineQuery     = "INSERT INTO purchase_line (purchase_id, store_id, listing_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?, ?, ?)"
	getPurchaseBase     = "SELECT id, buyer_id, total_price, shipping_address, contact_info, source, tracking_id, created_at FROM purchase"
	getLinesQuery       = "SELECT store_id, listing_id, product_id, quantity, unit_price FROM purchase_line WHERE purchase_id = ?"
)

func (r *SQL) InsertPurchaseTx(ctx context.Context, tx *sqlx.Tx, rec *model.PurchaseRecord) error {
	if _, err := tx.ExecContext(ctx, insertPurchaseQuery,
		rec.ID, rec.BuyerID, rec.TotalPrice, rec.ShippingAddress, rec.ContactInfo, rec.Source, rec.TrackingID, rec.CreatedAt); err != nil {
		return err
	}
	for _, line := range rec.Lines {
		if _, err := tx.ExecContext(ctx, insertLineQuery,
			rec.ID, line.StoreID, line.ListingID, line.ProductID, line.Quantity, line.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetByBuyer(ctx context.Context, buyerID uint64) ([]model.PurchaseRecord, error) {
	query := getPurchaseBase + " WHERE buyer_id = ? ORDER BY created_at DESC"
	return r.queryPurchases(ctx, query, buyerID)
}

func (r *SQL) GetByStore(ctx context.Context, storeID string) ([]model.PurchaseRecord, error) {
	query := getPurchaseBase + " WHERE id IN (SELECT DISTINCT purchase_id FROM purchase_line WHERE store_id = ?) ORDER BY created_at DESC"
	return r.queryPurchases(ctx, query, storeID)
}

func (r *SQL) queryPurchases(ctx context.Context, query string, arg any) ([]model.PurchaseRecord, error) {
	rows, err := r.conn.QueryxContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.PurchaseRecord, 0)
	for rows.Next() {
		var rec model.PurchaseRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	for i := range records {
		lines := make([]model.PurchaseLine, 0)
		lineRows, err := r.conn.QueryxContext(ctx, getLinesQuery, records[i].ID)
		if err != nil {
			return nil, err
		}
		for lineRows.Next() {
			var line model.PurchaseLine
			if err := lineRows.StructScan(&line); err != nil {
				lineRows.Close()
				return nil, err
			}
			lines = append(lines, line)
		}
		lineRows.Close()
		records[i].Lines = lines
	}
	return records, nil
}
