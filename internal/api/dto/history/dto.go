package history

type CalculateRequest struct {
	Probability float64 `json:"probability"` // Вероятность за попытку в процентах (0-100)
	Times       int     `json:"times"`       // Количество попыток
}

type EntryResponse struct {
	ID                    int64   `json:"id"`
	InputProbability      float64 `json:"input_probability"`      // Проценты, как ввели
	Times                 int     `json:"times"`                  // Количество попыток
	CalculatedProbability float64 `json:"calculated_probability"` // Проценты, 8 знаков
}
