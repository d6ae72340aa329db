package domain

// Client represents a small-business client whose books this service keeps.
type Client struct {
	ClientID  string `json:"clientID"`  // Primary Key (e.g., UUID)
	Name      string `json:"name"`      // Registered business name
	GSTIN     string `json:"gstin"`     // GST registration number; empty when unregistered
	Address   string `json:"address"`   // Nullable postal address
	StateCode string `json:"stateCode"` // Two-digit GST state code derived from the GSTIN
	AuditFields
}

// IsGSTRegistered reports whether the client can file GST returns.
func (c Client) IsGSTRegistered() bool {
	return c.GSTIN != ""
}
