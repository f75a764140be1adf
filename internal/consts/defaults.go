package consts

// Значения по умолчанию для дашборда
const (
	TopCoins        = 50
	Currency        = "usd"
	PageSize        = 6
	ChartDays       = 7
	MaxChartDays    = 365
	FetchErrMessage = "failed to fetch coins"
)
