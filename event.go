/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitvector

import "time"

const (
	// EvtBuildStart fires once Build/BuildFromWords has loaded the bits,
	// before the indices are built.
	EvtBuildStart = 0
	// EvtBuildEnd fires once both indices are built.
	EvtBuildEnd = 1
	// EvtQuery fires after a single access/rank/select query completes.
	EvtQuery = 2
)

// Event is a build or query notification. It carries enough to let a
// Listener report progress without the Vector knowing anything about how
// that report is rendered.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event. A zero evtTime is stamped with time.Now.
func NewEvent(evtType int, size int64, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, msg: msg, eventTime: evtTime}
}

// Type returns the event type (one of the Evt* constants).
func (e *Event) Type() int { return e.eventType }

// Time returns when the event was recorded.
func (e *Event) Time() time.Time { return e.eventTime }

// Size returns the size carried by the event, if any (0 otherwise).
func (e *Event) Size() int64 { return e.size }

// String returns the wrapped message, if any.
func (e *Event) String() string { return e.msg }

// Listener is implemented by anything that wants to observe build/query
// events, such as the command-line front end's verbose mode.
type Listener interface {
	ProcessEvent(evt *Event)
}
