package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vooz/donation-processor/internal/domain/entity"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/dto"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/api/handler"
	"github.com/vooz/donation-processor/internal/infrastructure/adapter/cloudpayments"
)

// Delivery is one signed notification to post
type Delivery struct {
	Kind          string
	DonationID    uint64
	InvoiceID     string
	TransactionID int64
}

// TestResult contains metrics for a single notification
type TestResult struct {
	Kind         string
	Code         int
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	AcceptedRequests  int
	FailedRequests    int
	TotalTime         time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	CodeCounts        map[string]int // kind/code -> count
	ErrorCounts       map[string]int
	Lock              sync.Mutex
}

type client struct {
	http      *http.Client
	baseURL   string
	secret    []byte
	adminUser string
	adminPass string
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	donations := flag.Int("d", 5, "Number of donations to create through the form")
	replays := flag.Int("r", 10, "Pay notifications per donation, all with the same transaction id")
	conflicts := flag.Bool("fail", true, "Also send one Fail notification per donation")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the service")
	secret := flag.String("secret", "PLACEHOLDER_API_SECRET", "API secret used to sign notifications")
	intakePath := flag.String("intake", "/api/donations", "Donation form path")
	payPath := flag.String("pay", "/api/payments/pay", "Pay notification path")
	failPath := flag.String("fail-path", "/api/payments/fail", "Fail notification path")
	adminUser := flag.String("admin-user", "admin", "Admin username used to verify final state")
	adminPass := flag.String("admin-pass", "", "Admin password; verification is skipped when empty")
	flag.Parse()

	c := &client{
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(*baseURL, "/"),
		secret:    []byte(*secret),
		adminUser: *adminUser,
		adminPass: *adminPass,
	}

	fmt.Printf("Creating %d donations via %s\n", *donations, *intakePath)
	var deliveries []Delivery
	var created []Delivery
	for i := 0; i < *donations; i++ {
		donationID, invoiceID, err := c.submitDonation(*intakePath, i)
		if err != nil {
			fmt.Printf("Failed to create donation %d: %v\n", i, err)
			continue
		}
		txID := int64(1_000_000 + rand.Intn(8_999_999))
		base := Delivery{DonationID: donationID, InvoiceID: invoiceID, TransactionID: txID}
		created = append(created, base)

		for j := 0; j < *replays; j++ {
			d := base
			d.Kind = "pay"
			deliveries = append(deliveries, d)
		}
		if *conflicts {
			d := base
			d.Kind = "fail"
			d.TransactionID = txID + 1
			deliveries = append(deliveries, d)
		}
	}
	if len(deliveries) == 0 {
		fmt.Println("Nothing to send")
		return
	}
	rand.Shuffle(len(deliveries), func(i, j int) { deliveries[i], deliveries[j] = deliveries[j], deliveries[i] })

	fmt.Printf("Notifications: %d (replays per donation: %d, conflicting fail: %v)\n", len(deliveries), *replays, *conflicts)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)

	stats := &TestStats{
		TotalRequests: len(deliveries),
		ResponseTimes: make([]time.Duration, 0, len(deliveries)),
		CodeCounts:    make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	results := make(chan TestResult, len(deliveries))
	jobs := make(chan Delivery, len(deliveries))

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range jobs {
				path := *payPath
				if d.Kind == "fail" {
					path = *failPath
				}
				results <- c.sendNotification(path, d)
			}
		}()
	}

	for _, d := range deliveries {
		jobs <- d
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Error != nil {
				stats.FailedRequests++
				stats.ErrorCounts[result.Error.Error()]++
			} else {
				stats.AcceptedRequests++
				stats.CodeCounts[fmt.Sprintf("%s/%d", result.Kind, result.Code)]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if c.adminPass != "" {
		verifyDonations(c, created)
	}
}

// submitDonation posts the form and extracts the invoice id from the widget data
func (c *client) submitDonation(path string, n int) (uint64, string, error) {
	form := url.Values{
		"amount":      {strconv.Itoa(500 + 100*n)},
		"paymentType": {entity.CadenceLabelMonthly},
		"donorName":   {"Нагрузочный Тест"},
		"email":       {fmt.Sprintf("load-test-%d@example.com", n)},
	}

	resp, err := c.http.PostForm(c.baseURL+path, form)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	var body dto.IntakeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, "", fmt.Errorf("decode form response: %w", err)
	}
	if !body.Success || body.PaymentData == nil {
		return 0, "", fmt.Errorf("form rejected: %s %v", body.Message, body.Errors)
	}
	return body.ElementID, body.PaymentData.InvoiceID, nil
}

// sendNotification posts one signed form-encoded notification
func (c *client) sendNotification(path string, d Delivery) TestResult {
	form := url.Values{
		"TransactionId": {strconv.FormatInt(d.TransactionID, 10)},
		"InvoiceId":     {d.InvoiceID},
		"Amount":        {"500.00"},
		"Currency":      {"RUB"},
		"DateTime":      {time.Now().UTC().Format("2006-01-02 15:04:05")},
	}
	if d.Kind == "pay" {
		form.Set("Status", "Completed")
		form.Set("Token", "tk_load_"+strconv.FormatUint(d.DonationID, 10))
	} else {
		form.Set("Reason", "InsufficientFunds")
		form.Set("ReasonCode", "5051")
	}
	body := []byte(form.Encode())

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return TestResult{Kind: d.Kind, Error: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(handler.SignatureHeader, cloudpayments.Sign(body, c.secret))

	startTime := time.Now()
	resp, err := c.http.Do(req)
	result := TestResult{Kind: d.Kind, ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var answer dto.WebhookResponse
	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	} else if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		result.Error = fmt.Errorf("undecodable answer: %w", err)
	} else {
		result.Code = answer.Code
	}
	return result
}

// verifyDonations checks through the admin API that every donation settled once
func verifyDonations(c *client, created []Delivery) {
	fmt.Println("\n----------------- FINAL STATE -----------------")
	ok := 0
	for _, d := range created {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/admin/donations/%d", c.baseURL, d.DonationID), nil)
		if err != nil {
			fmt.Printf("Donation %d: %v\n", d.DonationID, err)
			continue
		}
		req.SetBasicAuth(c.adminUser, c.adminPass)

		resp, err := c.http.Do(req)
		if err != nil {
			fmt.Printf("Donation %d: %v\n", d.DonationID, err)
			continue
		}
		var donation dto.DonationResponse
		err = json.NewDecoder(resp.Body).Decode(&donation)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("Donation %d: undecodable answer: %v\n", d.DonationID, err)
			continue
		}

		// the first terminal notification wins, so either outcome is valid
		settled := donation.PaymentStatus == string(entity.PaymentStatusSuccess) && donation.TransactionID == d.TransactionID
		rejected := donation.PaymentStatus == string(entity.PaymentStatusRejected) && donation.TransactionID == d.TransactionID+1
		if settled || rejected {
			ok++
		}
		fmt.Printf("Donation %-6d status=%-8s transaction=%d token=%v\n",
			donation.ID, donation.PaymentStatus, donation.TransactionID, donation.HasPaymentToken)
	}
	fmt.Printf("Consistent: %d/%d\n", ok, len(created))
}

func printResults(stats *TestStats) {
	var avgResponseTime time.Duration
	var p50, p90, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

		sorted := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Notifications: %d\n", stats.TotalRequests)
	fmt.Printf("Answered:            %d (%.1f%%)\n", stats.AcceptedRequests,
		float64(stats.AcceptedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f notifications/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- ANSWER CODES -----------------")
	keys := make([]string, 0, len(stats.CodeCounts))
	for k := range stats.CodeCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-12s: %d\n", k, stats.CodeCounts[k])
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
