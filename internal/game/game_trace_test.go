package game

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans installs an in-memory tracer provider for the duration of the test.
func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	return exporter
}

func spanAttr(stub tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, kv := range stub.Attributes {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func spansNamed(stubs tracetest.SpanStubs, name string) []tracetest.SpanStub {
	var out []tracetest.SpanStub
	for _, s := range stubs {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

func TestRunRecordsSpans(t *testing.T) {
	exporter := recordSpans(t)

	g := New(Config{Seed: 1}, strings.NewReader("abc\n500\n50\n"), &bytes.Buffer{}, zerolog.Nop())
	g.secret = 50

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	spans := exporter.GetSpans()

	inits := spansNamed(spans, "game.init")
	if len(inits) != 1 {
		t.Fatalf("game.init spans = %d, want 1", len(inits))
	}
	if v, ok := spanAttr(inits[0], "session.id"); !ok || v.AsString() != g.sessionID {
		t.Errorf("game.init session.id = %q, want %q", v.AsString(), g.sessionID)
	}

	turns := spansNamed(spans, "game.turn")
	wantTurns := []struct {
		kind    string
		state   string
		attempt int64
	}{
		{"invalid", "prompting", 0},
		{"out_of_range", "prompting", 0},
		{"guess", "won", 1},
	}
	if len(turns) != len(wantTurns) {
		t.Fatalf("game.turn spans = %d, want %d", len(turns), len(wantTurns))
	}
	for i, want := range wantTurns {
		if v, _ := spanAttr(turns[i], "input.kind"); v.AsString() != want.kind {
			t.Errorf("turn %d input.kind = %q, want %q", i, v.AsString(), want.kind)
		}
		if v, _ := spanAttr(turns[i], "state"); v.AsString() != want.state {
			t.Errorf("turn %d state = %q, want %q", i, v.AsString(), want.state)
		}
		if v, _ := spanAttr(turns[i], "attempt"); v.AsInt64() != want.attempt {
			t.Errorf("turn %d attempt = %d, want %d", i, v.AsInt64(), want.attempt)
		}
	}

	ends := spansNamed(spans, "game.end")
	if len(ends) != 1 {
		t.Fatalf("game.end spans = %d, want 1", len(ends))
	}
	if v, _ := spanAttr(ends[0], "state"); v.AsString() != "won" {
		t.Errorf("game.end state = %q, want %q", v.AsString(), "won")
	}
	if v, _ := spanAttr(ends[0], "attempts"); v.AsInt64() != 1 {
		t.Errorf("game.end attempts = %d, want 1", v.AsInt64())
	}
	if v, _ := spanAttr(ends[0], "session.id"); v.AsString() != g.sessionID {
		t.Errorf("game.end session.id = %q, want %q", v.AsString(), g.sessionID)
	}
}

func TestRunLogsTurns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	g := New(Config{Seed: 1}, strings.NewReader("abc\n500\n50\n"), &bytes.Buffer{}, logger)
	g.secret = 50

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var turns []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var event map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("log line %q is not JSON: %v", scanner.Text(), err)
		}
		if event["session"] != g.sessionID {
			t.Errorf("log event session = %v, want %q", event["session"], g.sessionID)
		}
		if event["message"] == "turn" {
			turns = append(turns, event)
		}
	}

	wantKinds := []string{"invalid", "out_of_range", "guess"}
	if len(turns) != len(wantKinds) {
		t.Fatalf("turn events = %d, want %d:\n%s", len(turns), len(wantKinds), buf.String())
	}
	for i, want := range wantKinds {
		if turns[i]["level"] != "debug" {
			t.Errorf("turn %d level = %v, want debug", i, turns[i]["level"])
		}
		if turns[i]["input"] != want {
			t.Errorf("turn %d input = %v, want %q", i, turns[i]["input"], want)
		}
	}
	if got := turns[2]["attempt"]; got != float64(1) {
		t.Errorf("final turn attempt = %v, want 1", got)
	}
	if got := turns[2]["state"]; got != "won" {
		t.Errorf("final turn state = %v, want won", got)
	}
}
