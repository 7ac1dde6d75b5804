package models

import "time"

// SaleInfo is the sale snapshot stored on a sold asset. PreviousStatus keeps
// the pre-sale status so a reversal can restore it; reversal clears the whole
// blob, nothing of the sale is archived.
type SaleInfo struct {
	Buyer          string    `json:"buyer"`
	SaleDate       time.Time `json:"sale_date"`
	Price          float64   `json:"price"`
	ReadingAtSale  float64   `json:"reading_at_sale"`
	PreviousStatus string    `json:"previous_status"`
	Documents      []string  `json:"documents,omitempty"`
}
