package model

import "time"

type MintRequest struct {
	Account string `json:"account"`
}

type GetMintRequest struct {
	Account string `json:"account"`
}

type MintSuccess struct {
	Title       string `json:"title"`
	TxHash      string `json:"tx_hash"`
	ExplorerURL string `json:"explorer_url"`
	Reverted    bool   `json:"reverted"`
}

type MintControl struct {
	Label    string       `json:"label"`
	FeeLabel string       `json:"fee_label,omitempty"`
	Disabled bool         `json:"disabled"`
	Pending  bool         `json:"pending"`
	Success  *MintSuccess `json:"success,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// MintView is everything a client needs to render the mint page for one account.
type MintView struct {
	Account   string       `json:"account,omitempty"`
	Connected bool         `json:"connected"`
	Loading   bool         `json:"loading"`
	Loaded    bool         `json:"loaded"`
	FreeMint  *MintControl `json:"free_mint,omitempty"`
	PaidMint  MintControl  `json:"paid_mint"`
}

type GetMintResponse MintView

type MintResponse struct {
	AttemptID string   `json:"attempt_id"`
	Kind      string   `json:"kind"`
	TxHash    string   `json:"tx_hash,omitempty"`
	View      MintView `json:"view"`
}

type ReloadMintResponse MintView

// ReceiptMessage is published when a mint transaction is included in a block.
type ReceiptMessage struct {
	AttemptID   string    `json:"attempt_id"`
	Kind        string    `json:"kind"`
	Account     string    `json:"account"`
	Chain       string    `json:"chain"`
	TxHash      string    `json:"tx_hash"`
	BlockHeight int64     `json:"block_height"`
	GasUsed     uint64    `json:"gas_used"`
	Result      string    `json:"result"`
	Timestamp   time.Time `json:"timestamp"`
}
