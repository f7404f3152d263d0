// Package options defines the typed option model shared by contributors, the
// hook pipeline, and renderers. An option Definition carries a unique key,
// presentation metadata, and a kind-specific payload drawn from a closed set
// of kinds (Toggle, DefaultOnToggle, Choice, Range). Definitions live in a
// Registry, an insertion-ordered key/definition mapping with overwrite-on-
// conflict write semantics: a later registration for the same key silently
// wins. The Registry is created once at generation start-up, threaded
// explicitly through the hook pipeline, and discarded once the host finalizes
// the option set. Construction helpers reside in internal/model but return
// the types aliased here.
package options
