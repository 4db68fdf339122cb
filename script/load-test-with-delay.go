package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"
)

// UpdateCategoryPayload is the body of POST /api/update_category
type UpdateCategoryPayload struct {
	ID         uint64 `json:"id"`
	Category   string `json:"category"`
	CustomName string `json:"custom_name,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the workers mix together
type Scenario struct {
	Name string
	Send func(client *http.Client, baseURL string, rows int) (*http.Response, error)
}

var descriptions = []string{
	"DMART PURCHASE", "SWIGGY ORDER", "NETFLIX", "UBER TRIP", "APOLLO PHARMACY",
	"ELECTRICITY BILL", "SALARY CREDIT", "MISC TRANSFER", "VET CLINIC", "GYM MEMBERSHIP",
}

var categories = []string{"Groceries", "Dining", "Entertainment", "Transportation", "Healthcare", "Other"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	rows := flag.Int("rows", 500, "Number of rows in the generated statement")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Uploading generated statement with %d rows...\n", *rows)
	if err := uploadStatement(client, *baseURL, *rows); err != nil {
		fmt.Printf("Upload failed: %v\n", err)
		return
	}

	scenarios := []Scenario{
		{"Update category", sendUpdateCategory},
		{"Custom category", sendCustomCategory},
		{"Expense summary", sendGet("/api/expense_summary")},
		{"Uncategorized", sendGet("/api/transactions/other")},
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *rows, *delayMs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.ScenarioStats[result.Scenario]++
		if result.Success {
			stats.SuccessfulRequests++
		} else {
			stats.FailedRequests++
			errMsg := "unknown"
			if result.Error != nil {
				errMsg = result.Error.Error()
			}
			stats.ErrorCounts[errMsg]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Lock.Unlock()
	}

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// uploadStatement posts a synthetic withdrawal/deposit statement
func uploadStatement(client *http.Client, baseURL string, rows int) error {
	var csv bytes.Buffer
	csv.WriteString("Date,Narration,Withdrawal Amt.,Deposit Amt.\n")
	for i := 0; i < rows; i++ {
		desc := descriptions[i%len(descriptions)]
		amount := fmt.Sprintf("%d.%02d", 10+rand.Intn(5000), rand.Intn(100))
		if desc == "SALARY CREDIT" {
			fmt.Fprintf(&csv, "%02d/06/24,%s,,%s\n", i%28+1, desc, amount)
			continue
		}
		fmt.Fprintf(&csv, "%02d/06/24,%s,%s,\n", i%28+1, desc, amount)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "load-test.csv")
	if err != nil {
		return err
	}
	if _, err := part.Write(csv.Bytes()); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/api/upload_csv", writer.FormDataContentType(), &body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func sendUpdateCategory(client *http.Client, baseURL string, rows int) (*http.Response, error) {
	payload := UpdateCategoryPayload{
		ID:       uint64(rand.Intn(rows) + 1),
		Category: categories[rand.Intn(len(categories))],
	}
	return postJSON(client, baseURL+"/api/update_category", payload)
}

func sendCustomCategory(client *http.Client, baseURL string, rows int) (*http.Response, error) {
	payload := map[string]any{
		"id":                   rand.Intn(rows) + 1,
		"custom_category":      "Pets",
		"description_keywords": []string{"VET"},
	}
	return postJSON(client, baseURL+"/api/add_custom_category", payload)
}

func sendGet(path string) func(*http.Client, string, int) (*http.Response, error) {
	return func(client *http.Client, baseURL string, _ int) (*http.Response, error) {
		return client.Get(baseURL + path)
	}
}

func postJSON(client *http.Client, url string, payload any) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return client.Post(url, "application/json", bytes.NewReader(jsonData))
}

func worker(client *http.Client, baseURL string, rows, delayMs int,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		// Optional delay between requests
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]

		startTime := time.Now()
		resp, err := scenario.Send(client, baseURL, rows)
		result := TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(startTime),
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-16s: %d requests\n", name, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
