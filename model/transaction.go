package model

// Transaction is the canonical shape of a record read from the transaction
// source backend.
type Transaction struct {
	ID         int     `json:"id"`
	Type       string  `json:"tipo"`
	ClientID   int     `json:"clienteId"`
	Document   string  `json:"documento"`
	Date       string  `json:"fecha"`
	CategoryID int     `json:"categoriaId"`
	Amount     float64 `json:"monto"`
}

// NewTransactionFromMap reads a loosely typed record. Keys are looked up in
// the source backend's Spanish form first and the English form second.
// Missing or mistyped values fall back to zero values.
func NewTransactionFromMap(m map[string]interface{}) Transaction {
	if m == nil {
		return Transaction{}
	}
	return Transaction{
		ID:         ToInt(firstPresent(m, "id")),
		Type:       ToString(firstPresent(m, "tipo", "type")),
		ClientID:   ToInt(firstPresent(m, "clienteId", "clientId")),
		Document:   ToString(firstPresent(m, "documento", "document")),
		Date:       ToString(firstPresent(m, "fecha", "date")),
		CategoryID: ToInt(firstPresent(m, "categoriaId", "categoryId")),
		Amount:     ToFloat(firstPresent(m, "monto", "amount")),
	}
}
