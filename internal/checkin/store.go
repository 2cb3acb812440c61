package checkin

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Pending перевод, ожидающий подтверждения юзером.
type Pending struct {
	OutBillNo   string `json:"out_bill_no"`
	PackageInfo string `json:"package_info"`
	AppID       string `json:"appid,omitempty"`
	MchID       string `json:"mch_id,omitempty"`
}

func (p Pending) IsEmpty() bool {
	return p.OutBillNo == "" && p.PackageInfo == ""
}

// PendingStore хранит Pending между перезагрузками страницы. Load возвращает пустой Pending, если ничего нет.
type PendingStore interface {
	Load() (Pending, error)
	Save(p Pending) error
	Clear() error
}

// FileStore PendingStore поверх JSON файла.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Pending, error) {
	var p Pending
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("load pending: %w", err)
	}
	if err = json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("load pending: %w", err)
	}
	return p, nil
}

// Save заменяет файл через переименование временного.
func (s *FileStore) Save(p Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save pending: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil { //nolint:mnd
		return fmt.Errorf("save pending: %w", err)
	}
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("save pending: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save pending: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear pending: %w", err)
	}
	return nil
}
