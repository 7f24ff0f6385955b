package model

// HistoryEntry запись истории расчётов.
// Вероятности хранятся в процентах (0-100)
type HistoryEntry struct {
	ID                    int64
	InputProbability      float64 // Вероятность за одну попытку, как её ввели
	Times                 int     // Количество попыток
	CalculatedProbability float64 // Итоговая вероятность, округлена до 8 знаков
}

// Calculation входные данные расчёта
type Calculation struct {
	Probability float64 // Проценты (0-100)
	Times       int
}
