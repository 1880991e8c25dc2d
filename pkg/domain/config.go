package domain

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// WorkspaceFolder is the template token standing in for the project root in
// generated configurations. Keeping paths expressed through the token makes
// a configuration portable when the project is relocated.
const WorkspaceFolder = "${workspaceFolder}"

// Request values for a DebugConfig.
const (
	// RequestLaunch starts a new process under the debugger.
	RequestLaunch = "launch"
	// RequestAttach attaches to a running process. Defined for schema
	// compatibility; no current generator emits it.
	RequestAttach = "attach"
)

// DebugConfig is a generated launch configuration. Type, Name and Request are
// required for every language; Extra carries the language-specific fields
// (mode, program, args, env, cwd, ...). The JSON form flattens Extra into the
// top-level object so the value matches the persisted launch-configuration
// schema.
type DebugConfig struct {
	// Type is the debug adapter identifier (e.g., "go", "debugpy", "node").
	Type string

	// Name is the human-readable display label.
	Name string

	// Request is RequestLaunch or RequestAttach.
	Request string

	// Extra holds language-specific extension fields.
	Extra map[string]any
}

// MarshalJSON flattens Extra into the top-level object. The required fields
// always win over same-named extension keys.
func (c DebugConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+3)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["type"] = c.Type
	out["name"] = c.Name
	out["request"] = c.Request
	return json.Marshal(out)
}

// UnmarshalJSON splits the flat launch-configuration object back into the
// required fields and Extra.
func (c *DebugConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Type, _ = raw["type"].(string)
	c.Name, _ = raw["name"].(string)
	c.Request, _ = raw["request"].(string)
	delete(raw, "type")
	delete(raw, "name")
	delete(raw, "request")

	if len(raw) > 0 {
		c.Extra = raw
	} else {
		c.Extra = nil
	}
	return nil
}

// TestConfig describes how to invoke a test runner for a single symbol.
// Produced only when the detected framework defines a test factory.
type TestConfig struct {
	// Framework is the framework that produced this configuration.
	Framework string `json:"framework"`

	// Command is the test-runner executable.
	Command string `json:"command"`

	// Args are the runner arguments.
	Args []string `json:"args,omitempty"`

	// Env holds additional environment variables.
	Env map[string]string `json:"env,omitempty"`

	// Cwd is the working directory for the runner.
	Cwd string `json:"cwd,omitempty"`
}

// WorkspaceRelative returns path relative to root with forward slashes.
// The second return value reports whether path actually lies under root.
func WorkspaceRelative(path, root string) (string, bool) {
	if root == "" {
		return "", false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		// Different drive letters on Windows, or a relative/absolute mix.
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// TemplatePath renders path through the workspace-folder token when it lies
// under root; otherwise the path is returned as-is.
func TemplatePath(path, root string) string {
	rel, ok := WorkspaceRelative(path, root)
	if !ok {
		return filepath.ToSlash(path)
	}
	if rel == "." {
		return WorkspaceFolder
	}
	return WorkspaceFolder + "/" + rel
}

// TemplateDir strips the trailing filename from filePath and renders the
// containing directory through the workspace-folder token. A path with no
// separator at all falls back to the token alone; a directory outside root
// is returned as a raw absolute path.
func TemplateDir(filePath, root string) string {
	normalized := filepath.ToSlash(filePath)
	idx := strings.LastIndex(normalized, "/")
	if idx < 0 {
		return WorkspaceFolder
	}

	dir := normalized[:idx]
	if dir == "" {
		dir = "/"
	}
	return TemplatePath(dir, root)
}
