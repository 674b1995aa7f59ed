// Package generator writes a resolved configuration as the Lua fragments
// read by the editor-side loader.
//
// Layout of the output directory:
//
//	startup            startup code of every entity, each headed by "-- <id>"
//	pre_cfgs/<id>      code run before loading a lazy plugin or bundle
//	cfgs/<id>          code run after loading it
//	deps/<id>          return {deps..., depBundles...}
//	plugin/<id>        return '<id>' for plugins, return nil for bundles
//	plugins/<id>       return {} for plugins, the members for bundles
//	mod_tbl, ev_tbl, ft_tbl, cmd_tbl    the trigger registries
//	mods/<tag>, evs/<tag>, fts/<tag>, cmds/<tag>    owners of each trigger
//	lazy               ids loaded lazily
//	.oboro-digest      digest of the configuration the files were made from
//
// Generation is skipped when the digest on disk already matches.
package generator
