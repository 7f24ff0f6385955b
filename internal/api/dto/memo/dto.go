package memo

type SaveRequest struct {
	Content string `json:"content"`
}

type MemoResponse struct {
	Content string `json:"content"`
	Exists  bool   `json:"exists"` // false - заметку ещё не сохраняли
}
