/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package wire

import "encoding/json"

// Status codes carried in the top-level "status" field of every request and
// response. Request codes and reply codes share the same field and type.
const (
	StatusPing             = "ping"
	StatusPong             = "pong"
	StatusNewSession       = "new_session"
	StatusSessionCreated   = "session_created"
	StatusRemoveSession    = "remove_session"
	StatusChangeFocus      = "change_focus"
	StatusStartServer      = "start_server"
	StatusStopServer       = "stop_server"
	StatusStartAllServers  = "start_all_servers"
	StatusStopAllServers   = "stop_all_servers"
	StatusCommand          = "command"
	StatusStatus           = "status"
	StatusStatusResponse   = "status_response"
	StatusUpdate           = "update"
	StatusUpdates          = "updates"
	StatusRetrieveLines    = "retrieve_lines"
	StatusRetrieveLinesRsp = "retrieve_lines_response"
	StatusOK               = "ok"
	StatusFailed           = "failed"
	StatusInvalidRequest   = "invalid_request"
)

// Request is the generic inbound shape: a status code plus whatever extra
// fields that code expects, captured as a raw map so the dispatcher can pick
// its own typed fields out of it without a schema per status code.
type Request struct {
	Status string `json:"status"`
	Fields map[string]interface{} `json:"-"`
}

// UnmarshalJSON decodes the status field strictly and keeps every other
// field, typed or not, in Fields.
func (r *Request) UnmarshalJSON(b []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	status, _ := raw["status"].(string)
	delete(raw, "status")

	r.Status = status
	r.Fields = raw

	return nil
}

// MarshalJSON re-assembles the status field and Fields into one flat object.
func (r Request) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["status"] = r.Status

	return json.Marshal(out)
}

// String returns the string value of field name, or "" if absent or not a string.
func (r Request) String(name string) string {
	v, _ := r.Fields[name].(string)
	return v
}

// Float64 returns the numeric value of field name, or 0 if absent or not numeric.
func (r Request) Float64(name string) float64 {
	v, _ := r.Fields[name].(float64)
	return v
}

// Has reports whether field name is present in the request at all.
func (r Request) Has(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// Failed builds a {status: failed, reason: ...} response.
func Failed(reason string) map[string]interface{} {
	return map[string]interface{}{"status": StatusFailed, "reason": reason}
}

// InvalidRequest builds a {status: invalid_request, reason: ...} response.
func InvalidRequest(reason string) map[string]interface{} {
	return map[string]interface{}{"status": StatusInvalidRequest, "reason": reason}
}

// OK builds a bare {status: ok} response.
func OK() map[string]interface{} {
	return map[string]interface{}{"status": StatusOK}
}
