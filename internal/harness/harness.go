// Package harness drives encode then decode over a cross-product of sample
// ids and records the round-trip checks for each pair.
package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/shortcode"
)

const maxCodeLen = 9

// Check names, in the order they are evaluated per case.
const (
	CheckLength   = "Length <= 9"
	CheckIsString = "Is String"
	CheckIsToday  = "Is Today"
	CheckStoreID  = "StoreId"
	CheckTransID  = "TransId"
)

// Sample is the id cross-product to exercise.
type Sample struct {
	StoreIDs       []int `yaml:"store_ids" json:"storeIds"`
	TransactionIDs []int `yaml:"transaction_ids" json:"transactionIds"`
}

// DefaultSample is used when no sample file is given.
func DefaultSample() Sample {
	return Sample{
		StoreIDs:       []int{175, 42, 0, 9},
		TransactionIDs: []int{9675, 23, 123, 7},
	}
}

var ErrEmptySample = errors.New("harness: sample needs at least one store id and one transaction id")

// LoadSample reads a YAML sample file. Missing keys fall back to DefaultSample.
func LoadSample(path string) (Sample, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Sample{}, fmt.Errorf("read sample %s: %w", path, err)
	}
	var s Sample
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Sample{}, fmt.Errorf("parse sample %s: %w", path, err)
	}
	def := DefaultSample()
	if s.StoreIDs == nil {
		s.StoreIDs = def.StoreIDs
	}
	if s.TransactionIDs == nil {
		s.TransactionIDs = def.TransactionIDs
	}
	if len(s.StoreIDs) == 0 || len(s.TransactionIDs) == 0 {
		return Sample{}, ErrEmptySample
	}
	return s, nil
}

type Check struct {
	Name string `json:"name" cbor:"name" msgpack:"name"`
	Pass bool   `json:"pass" cbor:"pass" msgpack:"pass"`
}

type Case struct {
	StoreID       int               `json:"storeId" cbor:"storeId" msgpack:"storeId"`
	TransactionID int               `json:"transactionId" cbor:"transactionId" msgpack:"transactionId"`
	Code          string            `json:"code" cbor:"code" msgpack:"code"`
	Decoded       shortcode.Decoded `json:"decoded" cbor:"decoded" msgpack:"decoded"`
	Checks        []Check           `json:"checks" cbor:"checks" msgpack:"checks"`
}

func (c Case) OK() bool {
	for _, ch := range c.Checks {
		if !ch.Pass {
			return false
		}
	}
	return true
}

type Report struct {
	StartedAt time.Time `json:"startedAt" cbor:"startedAt" msgpack:"startedAt"`
	Cases     []Case    `json:"cases" cbor:"cases" msgpack:"cases"`
	Passed    int       `json:"passed" cbor:"passed" msgpack:"passed"`
	Failed    int       `json:"failed" cbor:"failed" msgpack:"failed"`
}

func (r Report) OK() bool { return r.Failed == 0 }

// Run encodes and decodes every (store, tx) pair of s through c. clk must be
// the clock c was built with; it anchors the "Is Today" check.
func Run(c shortcode.Codec, clk shortcode.Clock, s Sample) Report {
	if clk == nil {
		clk = shortcode.SystemClock{}
	}
	r := Report{StartedAt: clk.Now()}
	for _, sid := range s.StoreIDs {
		for _, tid := range s.TransactionIDs {
			code := shortcode.EncodeOrInvalid(c, sid, tid)
			d := shortcode.DecodeOrDefault(c, code)

			cs := Case{StoreID: sid, TransactionID: tid, Code: code, Decoded: d}
			cs.Checks = []Check{
				{CheckLength, len(code) <= maxCodeLen},
				{CheckIsString, code != "" && utf8.ValidString(code)},
				{CheckIsToday, sameDay(d.ObservedAt, clk.Now())},
				{CheckStoreID, d.StoreID == sid},
				{CheckTransID, d.TransactionID == tid},
			}
			for _, ch := range cs.Checks {
				if ch.Pass {
					r.Passed++
				} else {
					r.Failed++
				}
			}
			r.Cases = append(r.Cases, cs)
		}
	}
	return r
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WriteText prints one header line per case followed by its checks.
func (r Report) WriteText(w io.Writer) error {
	for _, c := range r.Cases {
		if _, err := fmt.Fprintf(w, "%d - %d: %s\n", c.StoreID, c.TransactionID, c.Code); err != nil {
			return err
		}
		for _, ch := range c.Checks {
			status := "pass"
			if !ch.Pass {
				status = "FAIL"
			}
			if _, err := fmt.Fprintf(w, "  - %-12s %s\n", ch.Name, status); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
	return err
}
