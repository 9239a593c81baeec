package domain

// ReportCounts — количество строк в каждой из трёх таблиц,
// для сводной страницы оператора.
type ReportCounts struct {
	Users       int64 `json:"users"`
	Orders      int64 `json:"orders"`
	CartHistory int64 `json:"cart_history"`
}

// ReportDump — полное содержимое всех трёх таблиц для детальной страницы.
// Только для ручной диагностики, пагинации нет.
type ReportDump struct {
	Counts      ReportCounts       `json:"counts"`
	Users       []User             `json:"users"`
	Orders      []Order            `json:"orders"`
	CartHistory []CartHistoryEntry `json:"cart_history"`
}
