package stockhistory

import "context"

// Repository define el almacenamiento del historial de stock.
type Repository interface {
	// BulkInsert inserta todas las entradas como un solo lote.
	BulkInsert(ctx context.Context, items []InsertItem) error
}
