package entity

// BankConfig holds the transfer destination shown to buyers at checkout.
type BankConfig struct {
	ID            int64  `json:"id"`
	BankName      string `json:"banco"`
	AccountType   string `json:"tipo_cuenta"`
	AccountNumber string `json:"numero_cuenta"`
	HolderName    string `json:"titular"`
	HolderTaxID   string `json:"rut"`
	Email         string `json:"email"`
}
