package launch

import "context"

// FileProbe is the workspace existence oracle used for framework detection.
// Implementations answer "does any file matching this glob exist" with a
// search bounded to the first match; detection never reads file contents.
//
// The interface exists so detection can be exercised deterministically
// against a fake workspace in tests. pkg/workspace provides the disk-backed
// implementation.
type FileProbe interface {
	Exists(ctx context.Context, pattern string) (bool, error)
}

// FileProbeFunc adapts a function to the FileProbe interface.
type FileProbeFunc func(ctx context.Context, pattern string) (bool, error)

// Exists implements FileProbe.
func (f FileProbeFunc) Exists(ctx context.Context, pattern string) (bool, error) {
	return f(ctx, pattern)
}

// NoProbe is a FileProbe that never matches. Detection against it always
// falls back to the module default factory.
var NoProbe FileProbe = FileProbeFunc(func(context.Context, string) (bool, error) {
	return false, nil
})
