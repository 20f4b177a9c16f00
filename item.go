package journal

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Item is one immutable structured log event and all its ambient
// metadata. An Item is fully built by Emit before any scribe sees it, and
// the same value is handed to every registered scribe; scribes must treat
// it as read-only.
type Item struct {
	// App is the base namespace of the environment that emitted the item
	App Namespace
	// Env is the deployment tag of the environment
	Env Environment
	// Severity is the caller-supplied criticality of the event
	Severity Severity
	// Thread identifies the execution context that called Emit
	Thread string
	// Host is the machine identity, resolved once per environment
	Host string
	// PID is the process identity, resolved once per environment
	PID string
	// Payload is the caller-supplied structured data of the event
	Payload Payload
	// Message is the human-readable message
	Message Str
	// Time is the event timestamp, read from the environment's cached
	// clock
	Time time.Time
	// Namespace is the full namespace: App followed by the caller-supplied
	// namespace of the log call
	Namespace Namespace
	// Loc optionally carries the source location of the log call
	Loc *Location
}

// Location points at the source of a log call. It is optional on an Item;
// how it is obtained (runtime capture, code generation, hand-written) is
// the caller's concern. See Here for a runtime-based convenience.
type Location struct {
	// File is the source file name
	File string `json:"loc_fn"`
	// Package is the short package name
	Package string `json:"loc_pkg"`
	// Module is the package import path
	Module string `json:"loc_mod"`
	// Line is the line number within File
	Line int `json:"loc_ln"`
	// Col is the column number. Go's runtime does not expose columns, so
	// captured locations carry 0 here.
	Col int `json:"loc_col"`
}

// itemWire is the serialised shape of an Item. The key set is a
// compatibility contract with consumers that parse Katip-style JSON logs
// and must not change.
type itemWire struct {
	App    Namespace       `json:"app"`
	Env    Environment     `json:"env"`
	Sev    Severity        `json:"sev"`
	Thread string          `json:"thread"`
	Host   string          `json:"host"`
	PID    string          `json:"pid"`
	Data   json.RawMessage `json:"data"`
	Msg    Str             `json:"msg"`
	At     time.Time       `json:"at"`
	NS     Namespace       `json:"ns"`
	Loc    *Location       `json:"loc"`
}

// ItemJSON serialises an item, keeping only the payload fields the
// payload selects at the given verbosity.
func ItemJSON(v Verbosity, item Item) ([]byte, error) {
	data, err := PayloadJSON(v, item.Payload)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(itemWire{
		App:    item.App,
		Env:    item.Env,
		Sev:    item.Severity,
		Thread: item.Thread,
		Host:   item.Host,
		PID:    item.PID,
		Data:   data,
		Msg:    item.Message,
		At:     item.Time,
		NS:     item.Namespace,
		Loc:    item.Loc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "journal: marshal item")
	}
	return out, nil
}
