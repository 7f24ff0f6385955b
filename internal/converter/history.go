package converter

import (
	dto "gacha_calculator/internal/api/dto/history"
	"gacha_calculator/internal/model"
)

func ToCalculation(req dto.CalculateRequest) model.Calculation {
	return model.Calculation{
		Probability: req.Probability,
		Times:       req.Times,
	}
}

func ToEntryResponse(entry model.HistoryEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:                    entry.ID,
		InputProbability:      entry.InputProbability,
		Times:                 entry.Times,
		CalculatedProbability: entry.CalculatedProbability,
	}
}

func ToEntryResponses(entries []model.HistoryEntry) []dto.EntryResponse {
	result := make([]dto.EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = ToEntryResponse(e)
	}
	return result
}
