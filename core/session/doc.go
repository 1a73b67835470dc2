// Package session tracks the single logical worker of the application.
//
// Captures and syncs run one at a time. A caller acquires the operation name
// before starting and defers the release; a second request while the name is
// held is dropped, never queued.
//
//	release, ok := sess.TryAcquire("checker")
//	if !ok {
//	    return
//	}
//	defer release()
package session
