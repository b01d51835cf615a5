package constants

const (
	AppName        = "bank"
	ConfigFileName = "config.yaml"
	SQLiteFileName = "bank.db"
)
