package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

type result struct {
	StoreID       int       `json:"storeId" cbor:"storeId" msgpack:"storeId"`
	TransactionID int       `json:"transactionId" cbor:"transactionId" msgpack:"transactionId"`
	Code          string    `json:"code" cbor:"code" msgpack:"code"`
	ObservedAt    time.Time `json:"observedAt" cbor:"observedAt" msgpack:"observedAt"`
}

var sample = result{
	StoreID:       175,
	TransactionID: 9675,
	Code:          "4V-9675",
	ObservedAt:    time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC),
}

func mustByName[V any](t *testing.T, name string) Codec[V] {
	t.Helper()
	c, err := ByName[V](name)
	if err != nil {
		t.Fatalf("ByName(%q): %v", name, err)
	}
	return c
}

func TestByNameRoundTrip(t *testing.T) {
	for _, name := range Formats() {
		c := mustByName[result](t, name)
		b, err := c.Encode(sample)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		got, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if got.StoreID != sample.StoreID || got.TransactionID != sample.TransactionID || got.Code != sample.Code {
			t.Fatalf("%s: got %+v want %+v", name, got, sample)
		}
		if !got.ObservedAt.Equal(sample.ObservedAt) {
			t.Fatalf("%s: time %v want %v", name, got.ObservedAt, sample.ObservedAt)
		}
		if n, ok := c.(Named); !ok || n.Name() != name {
			t.Fatalf("%s: codec does not report its name", name)
		}
	}
}

func TestByNameListRoundTrip(t *testing.T) {
	in := []result{sample, {StoreID: 0, TransactionID: 1, Code: "00-0001", ObservedAt: sample.ObservedAt}}
	for _, name := range Formats() {
		c := mustByName[[]result](t, name)
		b, err := c.Encode(in)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		got, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if len(got) != 2 || got[1].Code != "00-0001" {
			t.Fatalf("%s: got %+v", name, got)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName[result]("xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
	if _, err := ByName[result](" JSON "); err != nil {
		t.Fatalf("format lookup should ignore case and spaces: %v", err)
	}
}

func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	a, err := c.Encode(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode(map[string]int{"c": 3, "a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("deterministic CBOR differs: %x vs %x", a, b)
	}
}

func TestJSONIndent(t *testing.T) {
	b, err := JSON[result]{Indent: "  "}.Encode(sample)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n  \"storeId\": 175") {
		t.Fatalf("indent not applied: %s", b)
	}
}

func TestProtobufMessage(t *testing.T) {
	c := NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })
	in, err := structpb.NewStruct(map[string]any{"code": "5J-ZZZZ", "storeId": 199})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if out.Fields["code"].GetStringValue() != "5J-ZZZZ" || out.Fields["storeId"].GetNumberValue() != 199 {
		t.Fatalf("unexpected message %v", out)
	}
}

func TestLimitCodec(t *testing.T) {
	c := LimitCodec[result]{Inner: JSON[result]{}, MaxDecode: 16}
	b, err := c.Encode(sample)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(b); err == nil || !strings.Contains(err.Error(), "payload too large") {
		t.Fatalf("expected size error, got %v", err)
	}
	c.MaxDecode = 0
	if _, err := c.Decode(b); err != nil {
		t.Fatalf("limit disabled: %v", err)
	}
}

func TestLines(t *testing.T) {
	in := []byte("4V-9675\n\n  00-0001  \n# comment\nab-0001\n")
	got, err := Lines{}.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4V-9675", "00-0001", "ab-0001"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %q want %q", got, want)
	}
	b, _ := Lines{}.Encode(want)
	if string(b) != "4V-9675\n00-0001\nab-0001\n" {
		t.Fatalf("encode: %q", b)
	}
}
