package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// maxBodySize ограничение на размер тела запроса
const maxBodySize = 1 << 20

// Decode читает JSON из тела запроса в T.
// Неизвестные поля и лишние данные после объекта - ошибка
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return payload, fmt.Errorf("decode request body: unexpected data after JSON object")
	}

	return payload, nil
}
