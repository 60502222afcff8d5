// Команда loadtest - нагрузочное тестирование запущенного сервера.
// Параметры задаются переменными окружения LOADTEST_*:
//
//	LOADTEST_BASE_URL=http://localhost:8080 LOADTEST_CONCURRENCY=50 go run ./scripts/loadtest
package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type settings struct {
	BaseURL     string
	Concurrency int
	Duration    time.Duration
	TargetRPS   int
}

func loadSettings() (settings, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("LOADTEST_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LOADTEST_"))
	}), nil)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		BaseURL:     strings.TrimRight(k.String("base_url"), "/"),
		Concurrency: k.Int("concurrency"),
		Duration:    time.Duration(k.Int("duration")) * time.Second,
		TargetRPS:   k.Int("target_rps"),
	}
	if s.BaseURL == "" {
		s.BaseURL = "http://localhost:8080"
	}
	if s.Concurrency <= 0 {
		s.Concurrency = 20
	}
	if s.Duration <= 0 {
		s.Duration = 10 * time.Second
	}
	if s.TargetRPS <= 0 {
		s.TargetRPS = 200
	}
	return s, nil
}

// stats обновляется воркерами атомарно, латентность в микросекундах
type stats struct {
	total   atomic.Int64
	success atomic.Int64
	failed  atomic.Int64
	latency atomic.Int64
	minLat  atomic.Int64
	maxLat  atomic.Int64
}

func (s *stats) record(latency int64, ok bool) {
	s.total.Add(1)
	if !ok {
		s.failed.Add(1)
		return
	}
	s.success.Add(1)
	s.latency.Add(latency)

	for {
		old := s.minLat.Load()
		if latency >= old || s.minLat.CompareAndSwap(old, latency) {
			break
		}
	}
	for {
		old := s.maxLat.Load()
		if latency <= old || s.maxLat.CompareAndSwap(old, latency) {
			break
		}
	}
}

func (s *stats) avgLatency() int64 {
	if n := s.success.Load(); n > 0 {
		return s.latency.Load() / n
	}
	return 0
}

// request - один запрос сценария
type request struct {
	method string
	path   string
	body   []byte
}

// scenario: чтение списков преобладает, изредка регистрируется пользователь
var scenario = []request{
	{method: http.MethodGet, path: "/api/v1/picnics/?past=false"},
	{method: http.MethodGet, path: "/api/v1/cities/"},
	{method: http.MethodGet, path: "/api/v1/users/?q=asc"},
	{method: http.MethodGet, path: "/api/v1/picnics/"},
	{method: http.MethodPost, path: "/api/v1/users/", body: []byte(`{"name":"Load","surname":"Test","age":30}`)},
}

func main() {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🚀 Нагрузочное тестирование Picnic API\n")
	fmt.Printf("📍 URL: %s\n", cfg.BaseURL)
	fmt.Printf("👥 Concurrency: %d горутин\n", cfg.Concurrency)
	fmt.Printf("⏱️  Длительность: %s\n", cfg.Duration)
	fmt.Printf("🎯 Цель: %d запросов/сек\n\n", cfg.TargetRPS)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        cfg.Concurrency,
			MaxIdleConnsPerHost: cfg.Concurrency,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	st := &stats{}
	st.minLat.Store(math.MaxInt64)
	start := time.Now()

	var wg sync.WaitGroup
	perWorker := max(cfg.TargetRPS/cfg.Concurrency, 1)
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			worker(ctx, client, cfg.BaseURL, offset, perWorker, st)
		}(i)
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				elapsed := time.Since(start).Seconds()
				fmt.Printf("⏱️  [%.0fs] RPS: %.0f | Всего: %d | ✅ %d | ❌ %d | ⚡ %d мкс\n",
					elapsed, float64(st.total.Load())/elapsed, st.total.Load(),
					st.success.Load(), st.failed.Load(), st.avgLatency())
			}
		}
	}()

	wg.Wait()
	printFinalStats(st, time.Since(start))
}

func worker(ctx context.Context, client *http.Client, baseURL string, offset, rps int, st *stats) {
	ticker := time.NewTicker(time.Second / time.Duration(rps))
	defer ticker.Stop()

	for i := offset; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			req := scenario[i%len(scenario)]
			latency, ok := send(ctx, client, baseURL, req)
			if ctx.Err() != nil {
				return
			}
			st.record(latency, ok)
		}
	}
}

func send(ctx context.Context, client *http.Client, baseURL string, r request) (int64, bool) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, r.method, baseURL+r.path, bytes.NewReader(r.body))
	if err != nil {
		return 0, false
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, false
	}
	resp.Body.Close()

	return time.Since(start).Microseconds(), resp.StatusCode == http.StatusOK
}

func printFinalStats(st *stats, elapsed time.Duration) {
	total := st.total.Load()
	success := st.success.Load()
	successRate := 0.0
	if total > 0 {
		successRate = float64(success) / float64(total) * 100
	}
	minLat := st.minLat.Load()
	if success == 0 {
		minLat = 0
	}

	fmt.Printf("\n📊 ФИНАЛЬНАЯ СТАТИСТИКА\n")
	fmt.Printf("⏱️  Время теста: %.2f секунд\n", elapsed.Seconds())
	fmt.Printf("📈 Средний RPS: %.0f запросов/сек\n", float64(total)/elapsed.Seconds())
	fmt.Printf("📊 Всего запросов: %d\n", total)
	fmt.Printf("✅ Успешных: %d (%.2f%%)\n", success, successRate)
	fmt.Printf("❌ Ошибок: %d\n", st.failed.Load())
	fmt.Printf("⚡ Средняя латентность: %d мкс\n", st.avgLatency())
	fmt.Printf("🚀 Минимальная латентность: %d мкс\n", minLat)
	fmt.Printf("🐌 Максимальная латентность: %d мкс\n", st.maxLat.Load())
}
