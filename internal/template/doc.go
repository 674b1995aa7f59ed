// Package template renders the Lua fragments that make up generated
// output.
//
// Templates are text/template files embedded in the binary and run with
// the sprig function set plus two helpers:
//
//	luaString "it's"        -> 'it\'s'
//	luaTable  (list "a" "b") -> {'a','b',}
//
// Every table is rendered with a trailing separator, which Lua accepts.
package template
