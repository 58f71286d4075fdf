// Package journal 提供記憶體內的 append-only 交易日誌 (JSON Lines)。
// 帳本在套用交易前先寫入日誌，重建帳本時依序重放即可還原狀態。
package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

type Journal struct {
	buf   bytes.Buffer
	count int
}

// New 建立一個空的 Journal
func New() *Journal {
	return &Journal{}
}

// Write 寫入一筆資料 (一行 JSON)
func (j *Journal) Write(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	j.buf.Write(line)
	j.buf.WriteByte('\n')
	j.count++
	return nil
}

// Len 回傳已寫入的筆數
func (j *Journal) Len() int {
	return j.count
}

// WriteTo 將整份日誌輸出到 w
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(j.buf.Bytes())
	return int64(n), err
}

// ReadAll 依寫入順序讀取所有資料
// callback 接收單筆原始 JSON，不會修改日誌本身
func (j *Journal) ReadAll(callback func(jsonRaw []byte) error) error {
	decoder := json.NewDecoder(bytes.NewReader(j.buf.Bytes()))
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
	return nil
}
