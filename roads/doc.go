// Package roads snaps GPS traces to the road network. The roads service
// lives on its own host and reports failures as an embedded error object
// rather than a top-level status field; the response adapter maps that
// shape onto the common classification.
package roads
