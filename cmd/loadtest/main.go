// Command loadtest drives the cart and checkout endpoints of a running
// JellyDog server and reports latency percentiles.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

type runResult struct {
	mu         sync.Mutex
	histogram  *hdrhistogram.Histogram
	operations int64
	errors     int64
}

func (r *runResult) record(latency time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.errors++
		return
	}
	r.operations++
	r.histogram.RecordValue(latency.Microseconds())
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	concurrency := flag.Int("concurrency", 4, "concurrent workers")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	customerID := flag.Int64("customer", 1, "customer id to shop as")
	storeID := flag.Int64("store", 1, "store id to shop at")
	productID := flag.Int64("product", 2, "product id to add")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	result := &runResult{
		// max latency 10s, 3 significant figures
		histogram: hdrhistogram.New(1, 10000000000, 3),
	}

	log.Printf("running %d workers against %s for %s", *concurrency, *baseURL, *duration)

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Since(start) < *duration {
				opStart := time.Now()
				err := addAndRead(client, *baseURL, *customerID, *storeID, *productID)
				result.record(time.Since(opStart), err)
			}
		}()
	}
	wg.Wait()

	total := time.Since(start)
	fmt.Printf("operations: %d\n", result.operations)
	fmt.Printf("errors:     %d\n", result.errors)
	fmt.Printf("throughput: %.1f op/s\n", float64(result.operations)/total.Seconds())
	fmt.Printf("avg:        %s\n", time.Duration(result.histogram.Mean())*time.Microsecond)
	fmt.Printf("p95:        %s\n", time.Duration(result.histogram.ValueAtQuantile(95))*time.Microsecond)
	fmt.Printf("p99:        %s\n", time.Duration(result.histogram.ValueAtQuantile(99))*time.Microsecond)
}

// addAndRead performs one add-to-cart followed by a cart read, the hot path
// of a browsing customer.
func addAndRead(client *http.Client, baseURL string, customerID, storeID, productID int64) error {
	body, err := json.Marshal(map[string]int64{
		"customer_id": customerID,
		"store_id":    storeID,
		"product_id":  productID,
		"quantity":    1,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/cart/add_to_cart", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("add_to_cart returned %d", resp.StatusCode)
	}

	resp, err = client.Get(fmt.Sprintf("%s/cart?customer_id=%d&store_id=%d", baseURL, customerID, storeID))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("get cart returned %d", resp.StatusCode)
	}
	return nil
}
