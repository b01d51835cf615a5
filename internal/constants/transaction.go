package constants

const (
	DefaultHistoryLimit = 100

	TransferOutMemo = "Transfer to account #%d: %s"
	TransferInMemo  = "Transfer from account #%d: %s"
	InterestMemo    = "Interest credit @ %s"

	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)
