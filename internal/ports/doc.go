// Package ports defines interfaces between layers in the hexagonal
// architecture. Service ports are implemented by the application layer and
// called by handlers. Store ports are implemented by storage adapters and
// called by the application layer. Client ports are implemented by the
// outbound HTTP adapter and called by the client-side mutation coordinator.
package ports
