// Package utils provides loose-typed conversion and JSON tree helpers.
//
// Save sections decode into schemaless map[string]any / []any trees
// because two record generations share each section. These helpers
// coerce scalars (ToInt, ToFloat, ToString, ToBool) and navigate or
// rewrite tree nodes (Obj, Slice, StringSlice and friends) without
// per-call-site type assertions.
package utils
