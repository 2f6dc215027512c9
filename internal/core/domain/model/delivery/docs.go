// Package delivery models a client's announcement of incoming goods and its
// one-time receipt at the warehouse.
//
//	Expected ──> Received
//
// A receipt stamps a monotonic delivery number, the condition of the goods and
// the receipt time. The warehouse order created on receipt lives in package
// warehouse.
package delivery
