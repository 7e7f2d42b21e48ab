package model

import "time"

// BrokerSession represents the stored brokerage connection. The access token
// is fernet-encrypted before it reaches the database and decrypted only when
// a sync needs it; EncryptedToken never leaves the service layer.
type BrokerSession struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	UserName       string     `json:"userName,omitempty"`
	EncryptedToken string     `json:"-"`
	ConnectedAt    time.Time  `json:"connectedAt"`
	LastSyncedAt   *time.Time `json:"lastSyncedAt,omitempty"`
}

// BrokerStatus summarises the connection state for API responses without
// exposing token material.
type BrokerStatus struct {
	Connected    bool       `json:"connected"`
	UserID       string     `json:"userId,omitempty"`
	UserName     string     `json:"userName,omitempty"`
	ConnectedAt  *time.Time `json:"connectedAt,omitempty"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
}
