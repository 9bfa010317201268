package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	TotalCount  = 100000
	Concurrency = 200

	baseURL    = "http://localhost:8080"
	identifier = "123456789"
)

// 壓測工具：對 deposit 端點打固定筆數的請求，統計吞吐與失敗數。
// 先啟動 cmd/core 並確保種子帳戶存在。
func main() {
	client := &http.Client{Timeout: 10 * time.Second}

	body, _ := json.Marshal(map[string]float64{"amount": 0.01})
	url := fmt.Sprintf("%s/accounts/%s/deposit", baseURL, identifier)

	var wg sync.WaitGroup
	wg.Add(TotalCount)
	sem := make(chan struct{}, Concurrency)

	var failed int64
	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := client.Post(url, "application/json", bytes.NewReader(body))
			if err != nil {
				atomic.AddInt64(&failed, 1)
				return
			}
			// 讀完再關，讓連線可以被重用
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				atomic.AddInt64(&failed, 1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	log.Printf("Total: %d, Failed: %d", TotalCount, atomic.LoadInt64(&failed))
	log.Printf("Elapsed: %v, TPS: %.0f", elapsed, float64(TotalCount)/elapsed.Seconds())
}
