// Package pipeline runs one unit of work per species on a pool of workers
// and hands the results back strictly in index order.
//
// The only contract to implement is Processor. Units never share state; the
// visit callback is the single serialized reduction point, so it may fold
// results into non-thread-safe accumulators.
package pipeline
