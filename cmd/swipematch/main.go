// Command swipematch is a test harness for package swipe: it reads one
// match request as JSON from a file or stdin, runs it through either the
// one-shot or the streaming driver, and prints the ranked candidate pool.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/swipe"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swipematch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	inputPath := fs.String("input", "", "path to the JSON match request (default: stdin)")
	dictPath := fs.String("dict", "", "path to a newline-delimited word list (required)")
	paramsPath := fs.String("params-file", "", "path to a YAML file of parameter overrides")
	mode := fs.String("mode", "oneshot", "matching implementation: oneshot, incremental, or threaded")
	verbose := fs.Int("verbose", 0, "debug verbosity level")
	logPath := fs.String("log", "", "path to append log output to (default: stderr)")
	online := fs.Bool("online", false, "print an evolving candidate snapshot while streaming (incremental/threaded modes)")
	delayMicros := fs.Int("delay", 0, "microseconds to sleep between fed points (incremental/threaded modes)")
	repeat := fs.Int("repeat", 1, "number of times to run the match, for profiling")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *dictPath == "" {
		fmt.Fprintln(stderr, "swipematch: -dict is required")
		return 1
	}

	logger, closeLog, err := openLogger(*logPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "swipematch: %v\n", err)
		return 1
	}
	defer closeLog()

	trie, err := loadDictionary(*dictPath)
	if err != nil {
		fmt.Fprintf(stderr, "swipematch: %v\n", err)
		return 1
	}

	base := params.Default()
	if *paramsPath != "" {
		base, err = loadParamOverrides(*paramsPath, base)
		if err != nil {
			fmt.Fprintf(stderr, "swipematch: %v\n", err)
			return 1
		}
	}

	raw, err := readInput(*inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "swipematch: %v\n", err)
		return 1
	}
	in, err := swipe.DecodeInput(raw)
	if err != nil {
		fmt.Fprintf(stderr, "swipematch: malformed input: %v\n", err)
		return 1
	}

	const minDotLength = 10
	delay := time.Duration(*delayMicros) * time.Microsecond

	for i := 0; i < max(1, *repeat); i++ {
		start := time.Now()
		out, err := matchOnce(*mode, trie, base, in, minDotLength, delay, *online, logger)
		if err != nil {
			fmt.Fprintf(stderr, "swipematch: %v\n", err)
			return 1
		}
		if *verbose > 0 {
			logger.Printf("run %d: %d candidates in %s", i, len(out.Candidates), time.Since(start))
		}
		if i == *repeat-1 {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				fmt.Fprintf(stderr, "swipematch: %v\n", err)
				return 1
			}
		}
	}

	return 0
}

func matchOnce(mode string, trie dictionary.Trie, base params.Params, in swipe.Input, minDotLength float64, delay time.Duration, online bool, logger *log.Logger) (swipe.Output, error) {
	switch mode {
	case "oneshot":
		m := swipe.NewMatcher(trie, base, minDotLength)
		return m.Match(in)

	case "incremental":
		p, err := resolveParams(base, in.Params)
		if err != nil {
			return swipe.Output{}, err
		}
		keys := buildKeys(in.Keys)
		sm := swipe.NewStreamMatcher(trie, keys, p, minDotLength)
		for _, pt := range in.Curve {
			sm.AddPoint(pt)
			reportOnline(online, sm, logger)
			if delay > 0 {
				time.Sleep(delay)
			}
		}
		return sm.EndCurve(), nil

	case "threaded":
		// The point-capture loop runs on its own goroutine, feeding a
		// channel at the requested delay, while this goroutine stays the
		// sole caller of AddPoint/EndCurve/Snapshot — Matcher requires a
		// single consumer, so threading here separates capture from
		// matching rather than parallelizing the matcher itself.
		p, err := resolveParams(base, in.Params)
		if err != nil {
			return swipe.Output{}, err
		}
		keys := buildKeys(in.Keys)
		sm := swipe.NewStreamMatcher(trie, keys, p, minDotLength)

		points := make(chan swipe.PointInput)
		go func() {
			defer close(points)
			for _, pt := range in.Curve {
				if delay > 0 {
					time.Sleep(delay)
				}
				points <- pt
			}
		}()
		for pt := range points {
			sm.AddPoint(pt)
			reportOnline(online, sm, logger)
		}
		return sm.EndCurve(), nil

	default:
		return swipe.Output{}, fmt.Errorf("unknown -mode %q (want oneshot, incremental, or threaded)", mode)
	}
}

func reportOnline(online bool, sm *swipe.StreamMatcher, logger *log.Logger) {
	if !online {
		return
	}
	snap := sm.Snapshot()
	logger.Printf("online: %d candidates so far", len(snap.Candidates))
}

func resolveParams(base params.Params, overrides map[string]float64) (params.Params, error) {
	if len(overrides) == 0 {
		return base, nil
	}
	return base.ApplyJSON(overrides)
}

// buildKeys mirrors package swipe's own (unexported) key-store
// construction: StreamMatcher needs a *keystore.Store handle up front,
// before any curve points exist.
func buildKeys(keys []swipe.KeyInput) *keystore.Store {
	out := make([]keystore.Key, len(keys))
	for i, k := range keys {
		var label rune
		for _, r := range k.K {
			label = r
			break
		}
		out[i] = keystore.Key{X: k.X, Y: k.Y, Width: k.W, Height: k.H, Label: label}
	}
	return keystore.NewStore(out)
}

func openLogger(path string, stderr io.Writer) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(stderr, "", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

func loadDictionary(path string) (*dictionary.MemTrie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return dictionary.NewMemTrie(words), nil
}

func loadParamOverrides(path string, base params.Params) (params.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("opening params file: %w", err)
	}
	var overrides map[string]float64
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return base, fmt.Errorf("parsing params file: %w", err)
	}
	return base.ApplyJSON(overrides)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	return raw, nil
}
