package storage

import "insider-tracker/models"

// TradeWriter is the interface any export backend must satisfy.
type TradeWriter interface {
	WriteTrades(trades []models.Trade) error
	Close() error
}
