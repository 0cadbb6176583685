package amqp

import (
	"encoding/json"
	"time"
)

// TransactionSyncMessage asks the worker to export one stored transaction.
// It carries only identifiers; the worker fetches the row from SQLite.
type TransactionSyncMessage struct {
	ID        int64     `json:"id"`
	ImportID  int64     `json:"import_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionSyncMessage creates a sync message for a stored transaction.
func NewTransactionSyncMessage(id, importID int64) *TransactionSyncMessage {
	return &TransactionSyncMessage{
		ID:        id,
		ImportID:  importID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionSyncMessageFromJSON creates a message from JSON bytes.
func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
