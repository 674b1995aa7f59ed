// Package dependency answers direct dependency queries over a resolved
// plugin configuration.
//
// Each start plugin, lazy plugin and bundle becomes a node. A node depends
// on the ids listed in its deps and depBundles, in that order. Bundles
// additionally record their member plugins.
//
// The graph is a lookup structure only: it never orders nodes, detects
// cycles or checks that referenced ids exist. Referenced ids that are not
// declared simply have no node.
package dependency
