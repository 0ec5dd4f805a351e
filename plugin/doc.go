// Package plugin ties the check core together for one plugin invocation.
//
// A Plugin is created once at startup from the plugin name and the full
// argument vector. It owns the thresholds, the optional state store and
// key, and the output channel. Several Plugins may coexist in one process.
//
// # Basic Usage
//
//	p, err := plugin.New("check_load", os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.SetThresholds(warn, crit); err != nil {
//	    p.Fatal(err)
//	}
//	result := p.Run(ctx, checker)
//	p.Exit(result)
//
// Exit prints "<LEVEL> - <message>" followed by any performance data and
// terminates with the level's exit code. Library errors never terminate the
// process on their own; Fatal maps them to an UNKNOWN exit.
package plugin
