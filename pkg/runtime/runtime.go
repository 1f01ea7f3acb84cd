// Package runtime carries the compiled runtime program embedded at build
// time. The wasm artifact is produced by a separate build step and checked
// in; this package only exposes it as opaque bytes.
package runtime

import _ "embed"

//go:embed node_runtime.wasm
var Binary []byte
