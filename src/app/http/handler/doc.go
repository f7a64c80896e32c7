// Package handler holds one gin handler per resource. Handlers bind the
// request, call a use case, and answer through the response package; the
// submission flow for a request is picked by its session id.
package handler
