package models

const (
	BackendRunning = "✅ Running"

	DatabaseNotAvailable = "❌ Not Available"
	DatabaseWorking      = "✅ Connected & Working"

	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"

	EnvSet    = "✅ Set"
	EnvNotSet = "❌ Not Set"
)

// StatusReport is the body of the database diagnostics endpoint.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func NewStatusReport() *StatusReport {
	return &StatusReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      EnvNotSet,
		DatabaseName:     EnvNotSet,
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}
}
