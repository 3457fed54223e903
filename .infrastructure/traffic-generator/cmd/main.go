package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Генератор нагрузки: дергает список заказов и смену статуса,
// чтобы на дашборде было что смотреть.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_requests_total",
		Help: "Количество отправленных запросов",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

var statuses = []string{
	"Food Processing",
	"Preparing",
	"Ready for Pickup",
	"Out for Delivery",
	"Delivered",
}

func targetURL() string {
	if url := os.Getenv("TARGET_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func authToken() string {
	return os.Getenv("TARGET_TOKEN")
}

func listOrders(client *http.Client) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(http.MethodGet, targetURL()+"/restaurant/orders", nil)
	if err != nil {
		return
	}
	req.Header.Set("token", authToken())

	resp, err := client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("list_orders", "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues("list_orders", fmt.Sprint(resp.StatusCode)).Inc()
}

func updateStatus(client *http.Client) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	body := fmt.Sprintf(
		`{"orderId":"%d","status":"%s","version":1}`,
		rand.Intn(1000),
		statuses[rand.Intn(len(statuses))],
	)

	req, err := http.NewRequest(http.MethodPost, targetURL()+"/restaurant/orders/status", bytes.NewBufferString(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", authToken())

	resp, err := client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("update_status", "error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues("update_status", fmt.Sprint(resp.StatusCode)).Inc()
}

func main() {
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	client := &http.Client{Timeout: 5 * time.Second}

	for {
		listOrders(client)
		if rand.Intn(3) == 0 {
			updateStatus(client)
		}
		time.Sleep(time.Duration(500+rand.Intn(1500)) * time.Millisecond)
	}
}
