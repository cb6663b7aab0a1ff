package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var maxClients int = 200
var requestsPerClient int = 30
var httpHostPort string = "127.0.0.1:1080"

var paramKeys = []string{
	"temperature", "nitrat", "nitrit", "phosphat",
	"ph", "sauerstoff", "karbonathaerte", "ammonium",
}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var non200 atomic.Int64

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	// Plans are generated up front so the worker goroutines never share rnd.
	pagePlans := make([][]string, maxClients)
	apiPlans := make([][]apiCall, maxClients)
	for i := range maxClients {
		pages := make([]string, requestsPerClient)
		calls := make([]apiCall, requestsPerClient)
		for j := range requestsPerClient {
			pages[j] = rndPagePath()
			calls[j] = rndAPICall()
		}
		pagePlans[i] = pages
		apiPlans[i] = calls
	}
	fmt.Printf("generated request plans for %v clients\n", maxClients)

	total := maxClients * requestsPerClient

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			for _, path := range pagePlans[i] {
				doGet(path)
			}
			fmt.Printf("\rclient %v finished browsing pages", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rbrowsed %v pages: used time=%v seconds, throughput=%v request/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			for _, call := range apiPlans[i] {
				doCall(call)
			}
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rcalled API %v times: used time=%v seconds, throughput=%v request/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)

	if n := non200.Load(); n > 0 {
		fmt.Printf("non-200 responses: %v, raise AQUA_DEFAULT_RATE/AQUA_DEFAULT_BURST if rate limited\n", n)
	}
}

type apiCall struct {
	method string
	path   string
	body   string
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndSelection() []string {
	selection := []string{}
	for _, key := range paramKeys {
		if flipCoin() {
			selection = append(selection, key)
		}
	}
	return selection
}

func rndPagePath() string {
	switch rnd.Intn(3) {
	case 0:
		return "/"
	case 1:
		return "/graphs?selected=" + strings.Join(rndSelection(), ",")
	default:
		return fmt.Sprintf("/readings?index=%d", rnd.Intn(5))
	}
}

func rndAPICall() apiCall {
	switch rnd.Intn(4) {
	case 0:
		return apiCall{method: "GET", path: "/api/overview"}
	case 1:
		return apiCall{method: "GET", path: "/api/graphs/chart?selected=" + strings.Join(rndSelection(), ",")}
	case 2:
		return apiCall{method: "GET", path: fmt.Sprintf("/api/readings/%d", rnd.Intn(5))}
	default:
		payload := map[string]any{
			"selection": rndSelection(),
			"key":       paramKeys[rnd.Intn(len(paramKeys))],
		}
		jsonData, _ := json.Marshal(payload)
		return apiCall{method: "POST", path: "/api/graphs/toggle", body: string(jsonData)}
	}
}

func doGet(path string) {
	resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		non200.Add(1)
	}
}

func doCall(call apiCall) {
	if call.method == "GET" {
		doGet(call.path)
		return
	}

	resp, err := http.Post(
		fmt.Sprintf("http://%s%s", httpHostPort, call.path),
		"application/json",
		bytes.NewBufferString(call.body),
	)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		non200.Add(1)
	}
}
