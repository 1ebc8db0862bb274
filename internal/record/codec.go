package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrCorruptBucket 表示存储桶内容整体无法解析
var ErrCorruptBucket = errors.New("corrupt bucket")

// DecodeError 描述存储桶解码时发生的可恢复问题。
// Corrupt 为 true 时整个桶被替换为默认值；否则只跳过了 Skipped 条记录。
type DecodeError struct {
	Bucket  string
	Skipped int
	Corrupt bool
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Corrupt {
		return fmt.Sprintf("decode %s: %v", e.Bucket, e.Err)
	}
	return fmt.Sprintf("decode %s: skipped %d malformed records", e.Bucket, e.Skipped)
}

func (e *DecodeError) Unwrap() error {
	if e.Corrupt {
		return ErrCorruptBucket
	}
	return nil
}

// decodeList 逐条解码 JSON 数组，每条记录先填充默认值再覆盖，
// 单条损坏只影响该条记录。
func decodeList[V any](bucket, raw string, defaults func() V, valid func(V) bool) ([]V, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
		return nil, &DecodeError{Bucket: bucket, Corrupt: true, Err: err}
	}

	items := make([]V, 0, len(elements))
	skipped := 0
	for _, element := range elements {
		item := defaults()
		if err := json.Unmarshal(element, &item); err != nil {
			skipped++
			continue
		}
		if valid != nil && !valid(item) {
			skipped++
			continue
		}
		items = append(items, item)
	}

	if skipped > 0 {
		return items, &DecodeError{Bucket: bucket, Skipped: skipped}
	}
	return items, nil
}

func encodeList[V any](items []V) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
