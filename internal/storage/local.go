package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalStorage はローカルファイルシステム上の改行区切りファイルにレコードを追記する AppendLog 実装。
type LocalStorage struct {
	baseDir string // ディスク上のルートディレクトリ (例: "./data")

	mu sync.Mutex
}

// NewLocalStorage は LocalStorage を生成する。
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

var _ AppendLog = (*LocalStorage)(nil)

func (s *LocalStorage) Append(_ context.Context, key string, record []byte) error {
	if bytes.IndexByte(record, '\n') >= 0 {
		return errors.New("storage: record contains newline")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dest := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("storage: open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("storage: stat: %w", err)
	}
	size, err := dropTornTail(f, info.Size())
	if err != nil {
		return fmt.Errorf("storage: repair tail: %w", err)
	}

	line := make([]byte, 0, len(record)+1)
	line = append(line, record...)
	line = append(line, '\n')
	if _, err := f.Write(line); err != nil {
		// 途中まで書き込まれた行を取り除く
		_ = f.Truncate(size)
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Truncate(size)
		return fmt.Errorf("storage: sync: %w", err)
	}
	return nil
}

// dropTornTail は改行で終わらない末尾 (書き込み途中の行) を切り詰め、新しいファイルサイズを返す。
// 次のレコードは常に行頭から書き始められる。
func dropTornTail(f *os.File, size int64) (int64, error) {
	const chunk = 4096
	buf := make([]byte, chunk)
	end := size
	for end > 0 {
		start := max(end-chunk, 0)
		n, err := f.ReadAt(buf[:end-start], start)
		if err != nil {
			return 0, err
		}
		if i := bytes.LastIndexByte(buf[:n], '\n'); i >= 0 {
			end = start + int64(i) + 1
			break
		}
		end = start
	}
	if end == size {
		return size, nil
	}
	if err := f.Truncate(end); err != nil {
		return 0, err
	}
	return end, nil
}

func (s *LocalStorage) Records(_ context.Context, key string) ([][]byte, error) {
	s.mu.Lock()
	data, err := os.ReadFile(filepath.Join(s.baseDir, key))
	s.mu.Unlock()
	if errors.Is(err, os.ErrNotExist) {
		return [][]byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read: %w", err)
	}

	records := [][]byte{}
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			// 改行で終わらない末尾は書き込み途中の行として扱う
			break
		}
		if i > 0 {
			records = append(records, data[:i])
		}
		data = data[i+1:]
	}
	return records, nil
}

func (s *LocalStorage) Ping(_ context.Context) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	info, err := os.Stat(s.baseDir)
	if err != nil {
		return fmt.Errorf("storage: stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage: %s is not a directory", s.baseDir)
	}
	return nil
}
