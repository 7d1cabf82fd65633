/*
Package observability turns component lifecycle events into logs and metrics.

Both Metrics.Hooks and LogHooks return domain.LifecycleHooks; combine them with
domain.ChainHooks and pass the result to the process runner (invocations) and to
components (outcomes).
*/
package observability
