package converter

import (
	dto "gacha_calculator/internal/api/dto/memo"
	"gacha_calculator/internal/model"
)

// ToMemoResponse memo == nil - заметки ещё нет
func ToMemoResponse(memo *model.Memo) dto.MemoResponse {
	if memo == nil {
		return dto.MemoResponse{}
	}
	return dto.MemoResponse{
		Content: memo.Content,
		Exists:  true,
	}
}
