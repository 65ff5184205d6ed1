package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// CredentialKey는 자격 증명이 저장되는 고정 키 이름이다.
const CredentialKey = "admin-token"

// Store는 세션 자격 증명 하나를 보관한다. Manager 외에는 직접 사용하지 않는다.
// Load는 저장된 값이 없으면 빈 문자열과 nil 에러를 돌려준다.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// MemoryStore는 프로세스 메모리에만 두는 Store다.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Delete() error {
	return s.Save("")
}

// FileStore는 CLI용 Store다. `admin-token: <token>` 한 줄짜리 YAML 파일을 0600 으로 쓴다.
// 같은 파일의 다른 키는 보존한다.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCredentialsPath는 사용자 설정 디렉터리 아래 blogctl/credentials.yaml 이다.
func DefaultCredentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "blogctl", "credentials.yaml"), nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("credentials file %s: %w", s.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Load() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return values[CredentialKey], nil
}

func (s *FileStore) Save(token string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[CredentialKey] = token
	return s.write(values)
}

func (s *FileStore) Delete() error {
	values, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := values[CredentialKey]; !ok {
		return nil
	}
	delete(values, CredentialKey)
	if len(values) == 0 {
		err := os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return s.write(values)
}
