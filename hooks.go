package shortcode

// Hooks are lightweight callbacks for rejected input.
// Implementations MUST be cheap and non-blocking; they run inline on
// every failed Encode/Decode.
type Hooks interface {
	// Encode was called with an out-of-domain id.
	// reason ∈ {ReasonStoreOutOfRange, ReasonTxOutOfRange}
	EncodeRejected(storeID, transactionID int, reason Reason)

	// Decode was called with a code that failed the grammar or whose
	// fields decode out of range.
	// reason ∈ {ReasonMalformed, ReasonStoreFieldOutOfRange, ReasonTxFieldOutOfRange}
	DecodeRejected(code string, reason Reason)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EncodeRejected(int, int, Reason) {}
func (NopHooks) DecodeRejected(string, Reason)   {}

// MultiHooks calls each of hs in order. Nil entries are skipped.
func MultiHooks(hs ...Hooks) Hooks {
	out := make(multiHooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

type multiHooks []Hooks

func (m multiHooks) EncodeRejected(storeID, transactionID int, reason Reason) {
	for _, h := range m {
		h.EncodeRejected(storeID, transactionID, reason)
	}
}

func (m multiHooks) DecodeRejected(code string, reason Reason) {
	for _, h := range m {
		h.DecodeRejected(code, reason)
	}
}
