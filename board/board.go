package board

import (
	"Frontend/metrics"
	"sync"
	"time"
)

type Area string

const (
	AreaConfig   Area = "config"
	AreaAuth     Area = "auth"
	AreaProducts Area = "products"
	AreaOrders   Area = "orders"
	AreaHealth   Area = "health"
)

// Saved等狀態訊息顯示3秒
const NoticeTTL = 3 * time.Second

// 每個輸出區塊目前顯示的結果
type Entry struct {
	Area       Area      `json:"area"`
	Generation uint64    `json:"generation"`
	Output     string    `json:"output"`
	Status     int       `json:"status,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Notice struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type notice struct {
	Notice
	expires time.Time
}

type Board struct {
	mu      sync.Mutex
	now     func() time.Time
	issued  map[Area]uint64
	entries map[Area]Entry
	notices map[Area]notice
}

func New() *Board {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Board {
	return &Board{
		now:     now,
		issued:  map[Area]uint64{},
		entries: map[Area]Entry{},
		notices: map[Area]notice{},
	}
}

// 取得該區塊的下一個世代編號
func (b *Board) Begin(area Area) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.issued[area]++
	return b.issued[area]
}

// 已顯示較新世代的結果時丟棄
func (b *Board) Publish(area Area, generation uint64, output string, status int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if current, ok := b.entries[area]; ok && current.Generation >= generation {
		metrics.StaleResultsTotal.WithLabelValues(string(area)).Inc()
		return false
	}
	b.entries[area] = Entry{
		Area:       area,
		Generation: generation,
		Output:     output,
		Status:     status,
		UpdatedAt:  b.now(),
	}
	return true
}

func (b *Board) Snapshot() map[Area]Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[Area]Entry, len(b.entries))
	for k, v := range b.entries {
		out[k] = v
	}
	return out
}

// 狀態訊息在ttl後自動消失
func (b *Board) Notify(area Area, message, kind string, ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices[area] = notice{
		Notice:  Notice{Message: message, Kind: kind},
		expires: b.now().Add(ttl),
	}
}

func (b *Board) Notice(area Area) (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, ok := b.notices[area]
	if !ok {
		return Notice{}, false
	}
	if !b.now().Before(n.expires) {
		delete(b.notices, area)
		return Notice{}, false
	}
	return n.Notice, true
}
