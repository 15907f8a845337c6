/*
Package server implements msgpack IPC for person autocomplete.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Every message carries an ID that is echoed back, and an
action.

# IPC

On start the server writes a status message:

	{"status": "ready"}

A lookup runs the person index on a query, optionally from a start position:

	{"id": "req_001", "a": "lookup", "q": "carl dahl"}
	{"id": "req_001", "p": 1, "pid": 42, "s": "Carl Berg Dahl (FORM)", "t": 12}

p is -1 when nobody matched. t is the lookup time in microseconds.

A resolve runs the initial selection of a field from its current value and
hints, the same way a freshly bound autocomplete field does:

	{"id": "req_002", "a": "resolve", "v": "", "n": "Jens Hansen", "t": "form 2019"}
	{"id": "req_002", "k": "selected", "pid": 7, "s": "Jens Hansen", "in": "7", "v": "7"}

reload rebuilds the index from the roster and swaps it in; stats reports the
size of the current index:

	{"id": "req_003", "a": "reload"}
	{"id": "req_004", "a": "stats"}

Failures are reported as {"id": ..., "e": message, "c": code}.
*/
package server

const (
	ActionLookup  = "lookup"
	ActionResolve = "resolve"
	ActionReload  = "reload"
	ActionStats   = "stats"
)

// Request is any client message; fields are used by action.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Query  string `msgpack:"q,omitempty"`
	From   int    `msgpack:"f,omitempty"`
	Value  string `msgpack:"v,omitempty"`
	Name   string `msgpack:"n,omitempty"`
	Title  string `msgpack:"t,omitempty"`
}

// LookupResponse is the answer to a lookup
type LookupResponse struct {
	ID        string `msgpack:"id"`
	Position  int    `msgpack:"p"`
	PersonID  int    `msgpack:"pid,omitempty"`
	Display   string `msgpack:"s,omitempty"`
	TimeTaken int64  `msgpack:"t"`
}

// ResolveResponse is the answer to a resolve
type ResolveResponse struct {
	ID       string `msgpack:"id"`
	Kind     string `msgpack:"k"`
	PersonID int    `msgpack:"pid,omitempty"`
	Display  string `msgpack:"s,omitempty"`
	Input    string `msgpack:"in"`
	Value    string `msgpack:"v"`
}

// StatsResponse describes the current index
type StatsResponse struct {
	ID        string `msgpack:"id"`
	Persons   int    `msgpack:"persons"`
	TitleKeys int    `msgpack:"title_keys"`
	Requests  int    `msgpack:"requests"`
}

// StatusResponse reports readiness and reload results
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
