// Command loadtest drives a running gritd with concurrent workers and prints
// per-endpoint latency percentiles for three traffic mixes.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"slices"
	"sort"
	"sync"
	"text/tabwriter"
	"time"
)

var (
	baseURL  = flag.String("url", "http://127.0.0.1:8420", "gritd base url")
	workers  = flag.Int("workers", 50, "concurrent workers")
	duration = flag.Duration("duration", 10*time.Second, "length of each phase")
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

// op is one kind of request with its relative share of a phase.
type op struct {
	weight int
	name   string
	call   func(rng *rand.Rand) (status int, err error)
}

type phase struct {
	title string
	ops   []op
}

func main() {
	flag.Parse()

	fmt.Printf("gritd load test: %d workers, %s per phase, target %s\n", *workers, *duration, *baseURL)
	if err := waitForServer(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	createLog := op{1, "POST /logs", postLog}
	summary := op{1, "GET /stats/summary", get("/stats/summary")}
	recent := op{1, "GET /logs/recent", get("/logs/recent?limit=10")}
	trend := op{1, "GET /stats/trend", get("/stats/trend?days=30")}
	weekly := op{1, "GET /stats/weekly", func(rng *rand.Rand) (int, error) {
		return get("/stats/weekly/" + randomDate(rng))(rng)
	}}
	nextReward := op{1, "GET /rewards/next", get("/rewards/next")}

	phases := []phase{
		{"seeding", []op{createLog}},
		{"mixed", []op{weighted(createLog, 50), weighted(summary, 20), weighted(recent, 15), weighted(trend, 15)}},
		{"read heavy", []op{weighted(createLog, 5), weighted(summary, 40), weighted(weekly, 20), weighted(nextReward, 20), weighted(trend, 15)}},
	}

	for _, p := range phases {
		fmt.Printf("\n--- %s ---\n", p.title)
		rec := run(p)
		rec.print(os.Stdout, *duration)
	}
}

func weighted(o op, weight int) op {
	o.weight = weight
	return o
}

func waitForServer() error {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			drain(resp)
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return fmt.Errorf("server at %s is not responding", *baseURL)
}

func run(p phase) *recorder {
	total := 0
	for _, o := range p.ops {
		total += o.weight
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rec := &recorder{byOp: make(map[string]*opStats)}
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for ctx.Err() == nil {
				o := pick(p.ops, rng.Intn(total))
				start := time.Now()
				status, err := o.call(rng)
				rec.add(o.name, time.Since(start), err != nil || status >= 400)
			}
		}(time.Now().UnixNano() + int64(i))
	}
	wg.Wait()
	return rec
}

func pick(ops []op, n int) op {
	for _, o := range ops {
		if n < o.weight {
			return o
		}
		n -= o.weight
	}
	return ops[len(ops)-1]
}

type opStats struct {
	errors    int
	latencies []time.Duration
}

type recorder struct {
	mu   sync.Mutex
	byOp map[string]*opStats
}

func (r *recorder) add(name string, latency time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byOp[name]
	if !ok {
		s = &opStats{}
		r.byOp[name] = s
	}
	s.latencies = append(s.latencies, latency)
	if failed {
		s.errors++
	}
}

func (r *recorder) print(out io.Writer, elapsed time.Duration) {
	names := make([]string, 0, len(r.byOp))
	for name := range r.byOp {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "endpoint\treqs\terrs\tavg\tp50\tp95\tp99\t")

	requests, errors := 0, 0
	for _, name := range names {
		s := r.byOp[name]
		slices.Sort(s.latencies)
		requests += len(s.latencies)
		errors += s.errors
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t\n", name, len(s.latencies), s.errors,
			mean(s.latencies), quantile(s.latencies, 0.50), quantile(s.latencies, 0.95), quantile(s.latencies, 0.99))
	}
	_ = tw.Flush()

	if requests == 0 {
		fmt.Fprintln(out, "no requests completed")
		return
	}
	fmt.Fprintf(out, "total %d reqs, %d errors (%.1f%%), %.0f req/s\n",
		requests, errors, float64(errors)/float64(requests)*100, float64(requests)/elapsed.Seconds())
}

// randomDate picks a day within the last eight weeks.
func randomDate(rng *rand.Rand) string {
	return time.Now().AddDate(0, 0, -rng.Intn(56)).Format(time.DateOnly)
}

func postLog(rng *rand.Rand) (int, error) {
	body, err := json.Marshal(map[string]interface{}{
		"date":            randomDate(rng),
		"taskName":        fmt.Sprintf("task %d", rng.Intn(40)),
		"difficultyScore": rng.Intn(10) + 1,
		"enduredTime":     rng.Intn(120) + 1,
	})
	if err != nil {
		return 0, err
	}
	resp, err := httpClient.Post(*baseURL+"/logs", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	drain(resp)
	return resp.StatusCode, nil
}

func get(path string) func(*rand.Rand) (int, error) {
	return func(_ *rand.Rand) (int, error) {
		resp, err := httpClient.Get(*baseURL + path)
		if err != nil {
			return 0, err
		}
		drain(resp)
		return resp.StatusCode, nil
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func mean(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return (sum / time.Duration(len(d))).Round(time.Microsecond)
}

// quantile expects d sorted.
func quantile(d []time.Duration, q float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := min(int(float64(len(d))*q), len(d)-1)
	return d[idx].Round(time.Microsecond)
}
