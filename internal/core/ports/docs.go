// Package ports declares the contracts between the fulfillment core and its
// adapters: transactional repositories, the pricing rule source and cache,
// and the outbound side-effect channels (task queue, notifier, payment links).
//
// Repository getters return an error wrapping errs.ErrObjectNotFound when the
// entity does not exist.
package ports
