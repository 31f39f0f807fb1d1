package entity

// StorageStatus is the answer of a storage probe.
type StorageStatus struct {
	Backend      string `json:"backend"`
	Connected    bool   `json:"connected"`
	LatencyMs    int64  `json:"latencyMs"`
	WriteCapable bool   `json:"writeCapable"`
	Error        string `json:"error,omitempty"`
}
