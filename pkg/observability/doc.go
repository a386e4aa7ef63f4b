/*
Package observability provides Prometheus metrics for the hanoi solver.

Metrics are fed by domain.LifecycleHooks, so any Solver can be instrumented
without changes to the core. The collected values can be written in the
Prometheus text exposition format without running an HTTP listener.
*/
package observability
