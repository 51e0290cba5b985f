package view

import "sync/atomic"

// Runtime IDs stay below this bound so they can never collide with
// ahead-of-time resource identifiers, which occupy the high ranges.
const maxGeneratedID = 0x00FFFFFF

var nextID atomic.Int32

// GenerateID allocates a process-unique runtime view ID.
//
// Allocation is a CAS loop so concurrent composers never observe the same
// id. The counter wraps back to 1 at maxGeneratedID rather than growing
// into the reserved range; zero is never returned, it means "unassigned".
func GenerateID() int32 {
	for {
		cur := nextID.Load()
		id := cur + 1
		if id > maxGeneratedID {
			id = 1
		}
		if nextID.CompareAndSwap(cur, id) {
			return id
		}
	}
}
