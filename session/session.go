package session

import (
	localjwt "Frontend/jwt"
	"sync"
	"time"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	ContentTypeJSON     = "application/json"
)

// 保存登入後取得的Token，只存在記憶體中
type Session struct {
	mu    sync.RWMutex
	token string
}

func New() *Session {
	return &Session{}
}

func (s *Session) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// 傳入空字串等同清除
func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Session) Clear() {
	s.Set("")
}

func (s *Session) HasToken() bool {
	return s.Get() != ""
}

// 一律帶JSON Content-Type，withAuth且持有Token時才加上Bearer
func (s *Session) Headers(withAuth bool) map[string]string {
	h := map[string]string{HeaderContentType: ContentTypeJSON}
	if token := s.Get(); withAuth && token != "" {
		h[HeaderAuthorization] = "Bearer " + token
	}
	return h
}

// 解析目前Token的內容
func (s *Session) Claims(now time.Time) (localjwt.Claims, error) {
	return localjwt.Inspect(s.Get(), now)
}
