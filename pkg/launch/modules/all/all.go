// Package all wires every built-in language module into a registry.
package all

import (
	"github.com/launchgen/core/pkg/launch"
	"github.com/launchgen/core/pkg/launch/modules/golang"
	"github.com/launchgen/core/pkg/launch/modules/node"
	"github.com/launchgen/core/pkg/launch/modules/python"
)

// Register adds the built-in Go, Python, JavaScript and TypeScript modules
// to the registry.
func Register(r *launch.Registry) {
	r.Register(golang.New())
	r.Register(python.New())
	r.Register(node.New())
	r.Register(node.NewTypeScript())
}
