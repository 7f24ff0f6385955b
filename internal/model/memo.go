package model

// Memo единственная заметка пользователя
type Memo struct {
	Content string
}
