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

package lce

import (
	"fmt"
	"time"
)

const (
	EVT_CONSTRUCTION_START  = 0 // Index construction starts
	EVT_SSS_SAMPLED         = 1 // Synchronizing set computed
	EVT_SORTED              = 2 // Indexed substrings sorted
	EVT_SA_BUILT            = 3 // Induced suffix array built
	EVT_LCP_BUILT           = 4 // LCP array built
	EVT_RMQ_BUILT           = 5 // RMQ sparse table built
	EVT_PARTITION_DONE      = 6 // One parallel construction partition finished
	EVT_CONSTRUCTION_END    = 7 // Index construction ends
)

// Event reports one step of Index construction. Listener implementations
// use it to print progress or collect timing, never to alter the result:
// construction output is identical whether or not a Listener is attached.
type Event struct {
	eventType int
	id        int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEventFromString creates an Event wrapping a preformatted message.
func NewEventFromString(evtType, id int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, msg: msg, eventTime: evtTime}
}

// NewEvent creates an Event carrying a size (bytes processed, entries
// produced, or similar, depending on eventType).
func NewEvent(evtType, id int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, size: size, eventTime: evtTime}
}

// Type returns the EVT_* event type.
func (this *Event) Type() int {
	return this.eventType
}

// ID returns the partition/worker id, or -1 for whole-index events.
func (this *Event) ID() int {
	return this.id
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the size info attached to the event.
func (this *Event) Size() int64 {
	return this.size
}

// String returns a human-readable representation of this event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""
	id := ""

	if this.id >= 0 {
		id = fmt.Sprintf(", \"id\": %d", this.id)
	}

	switch this.eventType {
	case EVT_CONSTRUCTION_START:
		t = "CONSTRUCTION_START"
	case EVT_SSS_SAMPLED:
		t = "SSS_SAMPLED"
	case EVT_SORTED:
		t = "SORTED"
	case EVT_SA_BUILT:
		t = "SA_BUILT"
	case EVT_LCP_BUILT:
		t = "LCP_BUILT"
	case EVT_RMQ_BUILT:
		t = "RMQ_BUILT"
	case EVT_PARTITION_DONE:
		t = "PARTITION_DONE"
	case EVT_CONSTRUCTION_END:
		t = "CONSTRUCTION_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\"%s, \"size\":%d, \"time\":%d }", t, id, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by construction progress processors. Delivery is
// synchronous and, for SemiSyncSetsParallel, serialized through a single
// mutex so concurrent workers never interleave partial writes.
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}
