// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is
// enabled and registers its routes on a Fiber router:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry. Register adds a feature; LoadAll loads the
// enabled ones in registration order.
package loader
